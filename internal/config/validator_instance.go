package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aixadm/nimres/internal/model"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	taskIDPattern     = regexp.MustCompile(`^[a-z0-9_-]+$`)
	objectTypePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("task_id", func(fl validator.FieldLevel) bool {
			return taskIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("nim_action", func(fl validator.FieldLevel) bool {
			_, ok := model.ParseAction(fl.Field().String())
			return ok
		})

		// NIM object types are bare identifiers such as lpp_source, spot,
		// bosinst_data, mksysb, fb_script or res_group.
		_ = v.RegisterValidation("object_type", func(fl validator.FieldLevel) bool {
			return objectTypePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

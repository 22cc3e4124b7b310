package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aixadm/nimres/internal/model"
	nimerrors "github.com/aixadm/nimres/pkg/errors"
)

// ValidateConfig checks struct tags and per-task contract rules. The contract
// rules reject caller misuse (a remove without a name, a create without a
// type) before any command line is built.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return nimerrors.NewValidationError("", "config is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return nimerrors.NewValidationError(
				first.Namespace(),
				fmt.Sprintf("failed %q constraint", first.Tag()),
				err,
			)
		}
		return nimerrors.NewValidationError("", err.Error(), err)
	}

	seen := make(map[string]struct{}, len(cfg.Tasks))
	for i, task := range cfg.Tasks {
		if _, dup := seen[task.ID]; dup {
			return nimerrors.NewValidationError(
				fmt.Sprintf("tasks[%d].id", i),
				fmt.Sprintf("duplicate task id %q", task.ID),
				nil,
			)
		}
		seen[task.ID] = struct{}{}

		if err := ValidateTask(task); err != nil {
			return err
		}
	}

	return nil
}

// ValidateTask enforces the per-action contract for a single task.
func ValidateTask(task Task) error {
	action, ok := model.ParseAction(task.Action)
	if !ok {
		return nimerrors.NewValidationError(
			fieldRef(task, "action"),
			fmt.Sprintf("unknown action %q", task.Action),
			nil,
		)
	}

	switch action {
	case model.ActionCreate:
		if task.Name == "" {
			return nimerrors.NewValidationError(fieldRef(task, "name"), "required for action create", nil)
		}
		if task.ObjectType == "" {
			return nimerrors.NewValidationError(fieldRef(task, "object_type"), "required for action create", nil)
		}
	case model.ActionRemove:
		if task.Name == "" {
			return nimerrors.NewValidationError(fieldRef(task, "name"), "required for action remove", nil)
		}
	case model.ActionShow:
		// Name and object_type are both optional; omitting them broadens
		// the query to the whole resources class.
	}

	return nil
}

func fieldRef(task Task, field string) string {
	if task.ID == "" {
		return field
	}
	return fmt.Sprintf("tasks[%s].%s", task.ID, field)
}

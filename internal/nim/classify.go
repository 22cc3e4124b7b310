package nim

import (
	"fmt"
	"strings"

	"github.com/aixadm/nimres/internal/model"
)

// Classify turns a command result into an OperationOutcome for the given
// action. Recoverable diagnostics (object missing, duplicate definition)
// become non-fatal messages with Changed=false; any other non-zero exit sets
// FatalError and the caller must abort.
func Classify(action model.Action, req model.ResourceRequest, res model.CommandResult) *model.OperationOutcome {
	outcome := &model.OperationOutcome{Raw: res}

	switch action {
	case model.ActionShow:
		classifyShow(req, res, outcome)
	case model.ActionCreate:
		classifyCreate(req, res, outcome)
	case model.ActionRemove:
		classifyRemove(req, res, outcome)
	}

	return outcome
}

// PreviewOutcome is the short-circuit result for preview mode. It must be
// produced before the built command ever reaches an executor.
func PreviewOutcome(command string, res model.CommandResult) *model.OperationOutcome {
	res.Command = command
	return &model.OperationOutcome{
		Changed: false,
		Message: fmt.Sprintf("command '%s' preview mode, execution skipped", command),
		Raw:     res,
	}
}

func classifyShow(req model.ResourceRequest, res model.CommandResult, outcome *model.OperationOutcome) {
	if res.ExitCode == 0 {
		found := true
		outcome.Found = &found
		outcome.Catalog = ParseCatalog(res.Stdout)
		outcome.Message = "resources listed"
		return
	}

	if ClassifyStderr(res.Stderr) == ClassNotFound {
		found := false
		outcome.Found = &found
		outcome.Catalog = model.NewResourceCatalog()
		outcome.Message = fmt.Sprintf("no such resource named %s", req.Name)
		return
	}

	fail(outcome, res, fmt.Sprintf("error displaying object %s", req.Name))
}

func classifyCreate(req model.ResourceRequest, res model.CommandResult, outcome *model.OperationOutcome) {
	if res.ExitCode == 0 {
		outcome.Changed = true
		outcome.Message = fmt.Sprintf("resource %s created", req.Name)
		return
	}

	if ClassifyStderr(res.Stderr) == ClassAlreadyExists {
		outcome.Message = "resource already exists"
		return
	}

	fail(outcome, res, fmt.Sprintf("error defining resource %s", req.Name))
}

func classifyRemove(req model.ResourceRequest, res model.CommandResult, outcome *model.OperationOutcome) {
	if res.ExitCode == 0 {
		outcome.Changed = true
		outcome.Message = fmt.Sprintf("resource %s removed", req.Name)
		return
	}

	if ClassifyStderr(res.Stderr) == ClassNotFound {
		outcome.Message = fmt.Sprintf("no such resource named %s", req.Name)
		return
	}

	fail(outcome, res, fmt.Sprintf("error removing resource %s", req.Name))
}

func fail(outcome *model.OperationOutcome, res model.CommandResult, message string) {
	outcome.Message = message
	outcome.FatalError = strings.TrimSpace(res.Stderr)
	if outcome.FatalError == "" {
		outcome.FatalError = message
	}
}

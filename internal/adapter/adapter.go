// Package adapter wires the core together: it validates a request, builds the
// command line, short-circuits preview mode, executes through a Runner, and
// classifies the captured result into one OperationOutcome per invocation.
package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/aixadm/nimres/internal/config"
	"github.com/aixadm/nimres/internal/logger"
	"github.com/aixadm/nimres/internal/model"
	"github.com/aixadm/nimres/internal/nim"
	nimerrors "github.com/aixadm/nimres/pkg/errors"
)

// Runner executes a built command line and captures its result. Non-zero
// exits are results, not errors; the error return covers launch failures.
type Runner interface {
	Execute(ctx context.Context, commandLine string) (model.CommandResult, error)
}

// Adapter runs NIM resource operations against a Runner.
type Adapter struct {
	runner Runner
	log    *logger.Logger
}

// New creates an Adapter. The logger may be nil.
func New(runner Runner, log *logger.Logger) *Adapter {
	return &Adapter{runner: runner, log: log}
}

// Run performs one resource operation. Preview requests never reach the
// Runner. A fatal classification returns the outcome alongside an
// ExecutionError so callers abort; recoverable conditions (not found, already
// exists) return a nil error.
func (a *Adapter) Run(ctx context.Context, action model.Action, req model.ResourceRequest) (*model.OperationOutcome, error) {
	command := nim.BuildCommand(action, req)

	log := a.log.WithFields(map[string]any{"action": string(action), "resource": req.Name})
	log.Debug(fmt.Sprintf("built command: %s", command))

	if req.Preview {
		outcome := nim.PreviewOutcome(command, model.CommandResult{})
		log.Info(outcome.Message)
		return outcome, nil
	}

	result, err := a.runner.Execute(ctx, command)
	if err != nil {
		log.Error(err, "command did not start")
		return nil, nimerrors.NewExecutionError(req.Name, -1, "", err)
	}

	outcome := nim.Classify(action, req, result)
	if outcome.Fatal() {
		err := nimerrors.NewExecutionError(req.Name, result.ExitCode, result.Stderr, errors.New(outcome.Message))
		log.Error(err, outcome.Message)
		return outcome, err
	}

	log.Info(outcome.Message)
	return outcome, nil
}

// TaskResult pairs a task with its outcome for task-file runs.
type TaskResult struct {
	TaskID  string
	Outcome *model.OperationOutcome
}

// RunConfig executes a task file sequentially. Recoverable outcomes are
// collected and the run continues; the first fatal or launch failure aborts
// the run, returning the results accumulated so far together with the error.
func (a *Adapter) RunConfig(ctx context.Context, cfg *config.Config) ([]TaskResult, error) {
	results := make([]TaskResult, 0, len(cfg.Tasks))

	for _, task := range cfg.Tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		req := task.Request()
		if cfg.Settings.DryRun {
			req.Preview = true
		}

		outcome, err := a.Run(ctx, task.ResolvedAction(), req)
		if outcome != nil {
			results = append(results, TaskResult{TaskID: task.ID, Outcome: outcome})
		}
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

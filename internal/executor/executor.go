// Package executor runs built command lines and captures their results. It
// owns process-level concerns (shell selection, blocking, cancellation); the
// nim package never executes anything itself.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/aixadm/nimres/internal/model"
)

// Shell executes command lines through a POSIX shell so that quoted attribute
// values survive intact.
type Shell struct {
	path string
}

// NewShell locates a usable shell.
func NewShell() (*Shell, error) {
	for _, candidate := range []string{"bash", "sh"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return &Shell{path: path}, nil
		}
	}
	return nil, fmt.Errorf("no suitable shell found")
}

// Execute runs commandLine synchronously and captures exit code, stdout and
// stderr. A non-zero exit is not an error here; classification decides what it
// means. The returned error covers launch failures only.
func (s *Shell) Execute(ctx context.Context, commandLine string) (model.CommandResult, error) {
	cmd := exec.CommandContext(ctx, s.path, "-c", commandLine)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	result := model.CommandResult{Command: commandLine}

	err := cmd.Run()
	result.Stdout = stdoutBuf.String()
	result.Stderr = stderrBuf.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

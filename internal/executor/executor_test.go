package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShellExecuteCapturesStreams(t *testing.T) {
	t.Parallel()

	shell, err := NewShell()
	require.NoError(t, err)

	result, err := shell.Execute(context.Background(), "echo out; echo err 1>&2")
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, "out\n", result.Stdout)
	require.Equal(t, "err\n", result.Stderr)
	require.Equal(t, "echo out; echo err 1>&2", result.Command)
}

func TestShellExecuteNonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()

	shell, err := NewShell()
	require.NoError(t, err)

	result, err := shell.Execute(context.Background(), "exit 3")
	require.NoError(t, err)
	require.Equal(t, 3, result.ExitCode)
}

func TestShellExecutePreservesQuotedArguments(t *testing.T) {
	t.Parallel()

	shell, err := NewShell()
	require.NoError(t, err)

	result, err := shell.Execute(context.Background(), `printf '%s' "a b"`)
	require.NoError(t, err)
	require.Equal(t, "a b", result.Stdout)
}

package nim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aixadm/nimres/internal/model"
)

func TestClassifyStderr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		stderr string
		want   Classification
	}{
		{"object missing code", `0042-053 lsnim: there is no NIM object named "x"`, ClassNotFound},
		{"duplicate definition code", `0042-081 nim: the resource already exists on "master"`, ClassAlreadyExists},
		{"unknown code is fatal", "0042-001 nim: internal error", ClassFatal},
		{"empty stderr is fatal", "", ClassFatal},
		{"code embedded mid-text still matches", "warning: retrying\n0042-053 lsnim: gone", ClassNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyStderr(tc.stderr))
		})
	}
}

func TestClassifyShow(t *testing.T) {
	t.Parallel()

	req := model.ResourceRequest{Name: "lpp_730"}

	t.Run("success lists resources without change", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 0, Stdout: "lpp_730:\n   type = lpp_source\n"}
		outcome := Classify(model.ActionShow, req, res)

		require.False(t, outcome.Changed)
		require.False(t, outcome.Fatal())
		require.Equal(t, "resources listed", outcome.Message)
		require.NotNil(t, outcome.Found)
		require.True(t, *outcome.Found)
		require.Equal(t, 1, outcome.Catalog.Len())
	})

	t.Run("missing object is reported not fatal", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 1, Stderr: "0042-053 lsnim: no such object"}
		outcome := Classify(model.ActionShow, req, res)

		require.False(t, outcome.Changed)
		require.False(t, outcome.Fatal())
		require.Equal(t, "no such resource named lpp_730", outcome.Message)
		require.NotNil(t, outcome.Found)
		require.False(t, *outcome.Found)
		require.Equal(t, 0, outcome.Catalog.Len())
	})

	t.Run("unknown failure is fatal and keeps the exit code", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 255, Stderr: "0042-999 lsnim: broken"}
		outcome := Classify(model.ActionShow, req, res)

		require.True(t, outcome.Fatal())
		require.Equal(t, "error displaying object lpp_730", outcome.Message)
		require.Equal(t, 255, outcome.Raw.ExitCode)
	})
}

func TestClassifyCreate(t *testing.T) {
	t.Parallel()

	req := model.ResourceRequest{Name: "lpp_730", ObjectType: "lpp_source"}

	t.Run("success marks changed", func(t *testing.T) {
		outcome := Classify(model.ActionCreate, req, model.CommandResult{ExitCode: 0})

		require.True(t, outcome.Changed)
		require.False(t, outcome.Fatal())
		require.Equal(t, "resource lpp_730 created", outcome.Message)
	})

	t.Run("already exists is unchanged and not fatal", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 1, Stderr: `0042-081 nim: already exists on "master"`}
		outcome := Classify(model.ActionCreate, req, res)

		require.False(t, outcome.Changed)
		require.False(t, outcome.Fatal())
		require.Equal(t, "resource already exists", outcome.Message)
	})

	t.Run("not-found marker on create is still fatal", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 1, Stderr: "0042-053 nim: no such object"}
		outcome := Classify(model.ActionCreate, req, res)

		require.True(t, outcome.Fatal())
		require.Equal(t, "error defining resource lpp_730", outcome.Message)
	})

	t.Run("unrecognized stderr is fatal with exit code preserved", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 73, Stderr: "nim: disk full"}
		outcome := Classify(model.ActionCreate, req, res)

		require.True(t, outcome.Fatal())
		require.Equal(t, 73, outcome.Raw.ExitCode)
		require.Equal(t, "nim: disk full", outcome.FatalError)
	})
}

func TestClassifyRemove(t *testing.T) {
	t.Parallel()

	req := model.ResourceRequest{Name: "spot_730"}

	t.Run("success marks changed", func(t *testing.T) {
		outcome := Classify(model.ActionRemove, req, model.CommandResult{ExitCode: 0})

		require.True(t, outcome.Changed)
		require.Equal(t, "resource spot_730 removed", outcome.Message)
	})

	t.Run("second remove observes not-found and stays non-fatal", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 1, Stderr: `0042-053 nim: "spot_730" is not a NIM object`}
		outcome := Classify(model.ActionRemove, req, res)

		require.False(t, outcome.Changed)
		require.False(t, outcome.Fatal())
		require.Equal(t, "no such resource named spot_730", outcome.Message)
	})

	t.Run("unknown failure is fatal", func(t *testing.T) {
		res := model.CommandResult{ExitCode: 2, Stderr: "nim: master unreachable"}
		outcome := Classify(model.ActionRemove, req, res)

		require.True(t, outcome.Fatal())
		require.Equal(t, "error removing resource spot_730", outcome.Message)
	})
}

func TestPreviewOutcome(t *testing.T) {
	t.Parallel()

	outcome := PreviewOutcome("/usr/sbin/nim -o remove spot_730", model.CommandResult{})

	require.False(t, outcome.Changed)
	require.False(t, outcome.Fatal())
	require.Equal(t, "command '/usr/sbin/nim -o remove spot_730' preview mode, execution skipped", outcome.Message)
	require.Equal(t, "/usr/sbin/nim -o remove spot_730", outcome.Raw.Command)
}

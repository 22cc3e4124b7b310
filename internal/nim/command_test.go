package nim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aixadm/nimres/internal/model"
)

func TestBuildCommandShow(t *testing.T) {
	t.Parallel()

	t.Run("no name and no type restricts to resources class", func(t *testing.T) {
		cmd := BuildCommand(model.ActionShow, model.ResourceRequest{})
		require.Equal(t, "/usr/sbin/lsnim -l -c resources", cmd)
	})

	t.Run("name only ends with bare name and has no type filter", func(t *testing.T) {
		cmd := BuildCommand(model.ActionShow, model.ResourceRequest{Name: "lpp_730"})
		require.True(t, strings.HasSuffix(cmd, " lpp_730"))
		require.NotContains(t, cmd, "-t ")
		require.NotContains(t, cmd, "-c resources")
	})

	t.Run("type only appends type filter", func(t *testing.T) {
		cmd := BuildCommand(model.ActionShow, model.ResourceRequest{ObjectType: "spot"})
		require.Equal(t, "/usr/sbin/lsnim -l -t spot", cmd)
	})

	t.Run("type and name compose", func(t *testing.T) {
		cmd := BuildCommand(model.ActionShow, model.ResourceRequest{ObjectType: "lpp_source", Name: "lpp_730"})
		require.Equal(t, "/usr/sbin/lsnim -l -t lpp_source lpp_730", cmd)
	})
}

func TestBuildCommandCreate(t *testing.T) {
	t.Parallel()

	t.Run("attributes keep caller order", func(t *testing.T) {
		req := model.ResourceRequest{
			Name:       "lpp_730",
			ObjectType: "lpp_source",
			Attributes: []model.Attribute{
				{Key: "source", Value: "/a"},
				{Key: "location", Value: "/b"},
			},
		}
		cmd := BuildCommand(model.ActionCreate, req)

		require.Equal(t, `/usr/sbin/nim -a server=master -o define -t lpp_source -a source="/a" -a location="/b" lpp_730`, cmd)

		source := strings.Index(cmd, `-a source="/a"`)
		location := strings.Index(cmd, `-a location="/b"`)
		require.Greater(t, location, source)
	})

	t.Run("name is the final positional argument", func(t *testing.T) {
		cmd := BuildCommand(model.ActionCreate, model.ResourceRequest{Name: "spot_730", ObjectType: "spot"})
		require.True(t, strings.HasSuffix(cmd, " spot_730"))
	})

	t.Run("attribute values pass through verbatim", func(t *testing.T) {
		req := model.ResourceRequest{
			Name:       "grp",
			ObjectType: "res_group",
			Attributes: []model.Attribute{{Key: "comments", Value: `7.3 "golden" set`}},
		}
		cmd := BuildCommand(model.ActionCreate, req)
		require.Contains(t, cmd, `-a comments="7.3 "golden" set"`)
	})
}

func TestBuildCommandRemove(t *testing.T) {
	t.Parallel()

	cmd := BuildCommand(model.ActionRemove, model.ResourceRequest{Name: "spot_730"})
	require.Equal(t, "/usr/sbin/nim -o remove spot_730", cmd)
}

func TestBuildCommandIsDeterministic(t *testing.T) {
	t.Parallel()

	req := model.ResourceRequest{
		Name:       "lpp_730",
		ObjectType: "lpp_source",
		Attributes: []model.Attribute{{Key: "location", Value: "/nim1/x"}},
	}

	first := BuildCommand(model.ActionCreate, req)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, BuildCommand(model.ActionCreate, req))
	}
}

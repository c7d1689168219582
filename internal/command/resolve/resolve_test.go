package resolve_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"rocmclean/internal/command/resolve"
	"rocmclean/internal/config"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func execute(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cfg := &config.Config{}
	cmd, err := resolve.NewCommand(cfg)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	return buf, cmd.Execute()
}

func TestResolve_text(t *testing.T) {
	buf, err := execute(t, "gfx906:xnack-;gfx1030")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolve_text", buf.Bytes())
}

func TestResolve_textWithHints(t *testing.T) {
	buf, err := execute(t, "gfx906:xnack-;gfx1030", "--hints")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolve_text_hints", buf.Bytes())
}

func TestResolve_json(t *testing.T) {
	buf, err := execute(t, "gfx90a:sramecc+:xnack+", "--hints", "--output", "json")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolve_json", buf.Bytes())
}

func TestResolve_yaml(t *testing.T) {
	buf, err := execute(t, "gfx908;gfx1100", "--output", "yaml")
	require.NoError(t, err)

	var out struct {
		ShortISAs     []string `yaml:"short_isas"`
		ShortVersions []string `yaml:"short_versions"`
		Entries       []struct {
			Name string `yaml:"name"`
		} `yaml:"entries"`
	}

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []string{"gfx1100", "gfx908"}, out.ShortISAs)
	assert.Equal(t, []string{"gfx11", "gfx9"}, out.ShortVersions)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "gfx908", out.Entries[0].Name)
	assert.Equal(t, "gfx1100", out.Entries[1].Name)
}

func TestResolve_jsonOmitsHintWithoutFlag(t *testing.T) {
	buf, err := execute(t, "gfx906", "--output", "json")
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	entries, ok := out["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)

	entry, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, entry, "hsa_override_gfx_version")
}

func TestResolve_unknownTarget(t *testing.T) {
	_, err := execute(t, "gfx906;notagfx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown gfx target "notagfx"`)
}

func TestResolve_unknownFormat(t *testing.T) {
	_, err := execute(t, "gfx906", "--output", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestResolve_requiresTargets(t *testing.T) {
	_, err := execute(t)

	require.Error(t, err)
}

package list_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rocmclean/internal/command/list"
	"rocmclean/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

type listedRow struct {
	Name           string `json:"name"            yaml:"name"`
	Version        string `json:"version"         yaml:"version"`
	SRAMECC        string `json:"sramecc"         yaml:"sramecc"`
	XNACK          string `json:"xnack"           yaml:"xnack"`
	WavefrontSize  int    `json:"wavefront_size"  yaml:"wavefront_size"`
	PyTorchSupport bool   `json:"pytorch_support" yaml:"pytorch_support"`
}

func execute(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cfg := &config.Config{}
	cmd, err := list.NewCommand(cfg)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	return buf, cmd.Execute()
}

func TestList_text(t *testing.T) {
	buf, err := execute(t)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 107, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "gfx700")
	assert.Contains(t, out, "gfx1151")
	assert.Contains(t, out, "gfx90a:sramecc+:xnack+")
}

func TestList_textPyTorchOnly(t *testing.T) {
	buf, err := execute(t, "--pytorch")
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 20, strings.Count(out, "\n"))
	assert.Contains(t, out, "gfx1100")
	assert.NotContains(t, out, "gfx1151")

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n")[1:] {
		assert.True(t, strings.HasSuffix(line, "yes"), "line %q should be a pytorch row", line)
	}
}

func TestList_json(t *testing.T) {
	buf, err := execute(t, "--output", "json")
	require.NoError(t, err)

	var rows []listedRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 106)

	assert.Equal(t, "gfx700", rows[0].Name)
	assert.Equal(t, "7.0.0", rows[0].Version)
	assert.Equal(t, 64, rows[0].WavefrontSize)
	assert.False(t, rows[0].PyTorchSupport)
}

func TestList_yamlPyTorchOnly(t *testing.T) {
	buf, err := execute(t, "--pytorch", "--output", "yaml")
	require.NoError(t, err)

	var rows []listedRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 19)

	for _, r := range rows {
		assert.True(t, r.PyTorchSupport, "row %s should support pytorch", r.Name)
	}
}

func TestList_unknownFormat(t *testing.T) {
	_, err := execute(t, "--output", "csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "csv"`)
}

package prune_test

import (
	"bytes"
	"testing"

	"rocmclean/internal/command/prune"
	"rocmclean/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cfg := &config.Config{}
	cmd, err := prune.NewCommand(cfg)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	return buf, cmd.Execute()
}

func TestPrune_unknownTarget(t *testing.T) {
	_, err := execute(t, "gfx906;gfx9999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown gfx target "gfx9999"`)
}

func TestPrune_emptyTargets(t *testing.T) {
	_, err := execute(t, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown gfx target ""`)
}

func TestPrune_requiresTargets(t *testing.T) {
	_, err := execute(t)

	require.Error(t, err)
}

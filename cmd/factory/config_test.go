package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jolt/press"
)

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factory.json")
	body := `{"input":"machines.txt","part":2,"workers":4,
		"solver":{"int_tol":1e-5,"max_extra":1,"free_var_cap":50,"workers":2}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var c Config
	require.NoError(t, ReadConfig(path, &c))
	assert.Equal(t, "machines.txt", c.Input)
	assert.Equal(t, 2, c.Part)
	assert.Equal(t, 4, c.Workers)

	opts := c.PressOptions(nil)
	assert.Equal(t, 1e-5, opts.IntTol)
	assert.Zero(t, opts.SignTol, "left for the press default")
	assert.Equal(t, 1, opts.MaxExtra)
	assert.Equal(t, 50, opts.FreeVarCap)
	assert.Equal(t, 2, opts.Workers)
}

func TestPressOptions_Empty(t *testing.T) {
	assert.Equal(t, press.Options{}, Config{}.PressOptions(nil))
}

func TestReadConfig_Missing(t *testing.T) {
	var c Config
	require.Error(t, ReadConfig(filepath.Join(t.TempDir(), "nope.json"), &c))
}

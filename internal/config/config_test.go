// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridcalc/internal/config"
	"github.com/stretchr/testify/require"
)

// TestDefault pins the built-in configuration.
func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.Equal(t, 6, cfg.Output.FieldWidth)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, [2]int{0, 1}, cfg.Demo.SwapRows)
	require.Equal(t, [2]int{1, 2}, cfg.Demo.SwapCols)
	require.Equal(t, config.Update{Row: 2, Col: 2, Value: 99}, cfg.Demo.Update)
}

// TestLoadEmptyPath ensures an empty path yields the defaults.
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

// TestLoadOverrides ensures yaml values override defaults and unset fields keep them.
func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcalc.yaml")
	body := "output:\n  field_width: 4\ndemo:\n  update: {row: 0, col: 1, value: -5}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Output.FieldWidth)
	require.Equal(t, config.Update{Row: 0, Col: 1, Value: -5}, cfg.Demo.Update)
	require.Equal(t, "info", cfg.Logging.Level)       // untouched default
	require.Equal(t, [2]int{0, 1}, cfg.Demo.SwapRows) // untouched default
}

// TestLoadBadFile covers a missing file and malformed yaml.
func TestLoadBadFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("just a scalar, not a mapping"), 0o644))
	_, err = config.Load(path)
	require.Error(t, err)
}

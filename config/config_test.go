package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocampo/deskplan/config"
	"github.com/ocampo/deskplan/office"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "deskplan.db", cfg.DB.Path)
	require.Equal(t, 10, cfg.Window.Span)
	require.Equal(t, "info", cfg.Log.Level)

	reg := cfg.Registry()
	require.Equal(t, office.DefaultID, reg.Default())
}

func TestLoad_FileAndEnv(t *testing.T) {
	yaml := `
db:
  path: /tmp/offices.db
log:
  level: debug
offices:
  - id: north
    name: North Wing
  - id: south
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("DESKPLAN_CONFIG_PATH", path)
	t.Setenv("DESKPLAN_WINDOW_SPAN", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/offices.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 5, cfg.Window.Span)

	reg := cfg.Registry()
	require.Equal(t, []office.ID{"north", "south"}, reg.IDs())
}

func TestLoad_BadSpan(t *testing.T) {
	t.Setenv("DESKPLAN_WINDOW_SPAN", "lots")
	_, err := config.Load()
	require.Error(t, err)
}

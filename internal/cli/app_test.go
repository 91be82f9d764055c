package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dkuleshov/emgtrack/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "emg_db")
	return cfg
}

func TestNewApp_FileBackend(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.FileExists(t, filepath.Join(cfg.DataDir, dbFileName))
	assert.False(t, app.isSignedIn())
}

func TestNewApp_KVBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backend = config.BackendKV

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	require.NoError(t, app.svc.Initialize(context.Background()))
}

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backend = "cloud"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

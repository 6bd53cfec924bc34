package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/online-shop-nota/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "online-shop-nota", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Receipt.Dir)
	assert.False(t, cfg.Receipt.PDF)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RECEIPT_DIR", "/tmp/notas")
	t.Setenv("RECEIPT_PDF", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/notas", cfg.Receipt.Dir)
	assert.True(t, cfg.Receipt.PDF)
}

func TestLoad_BoolInvalidoUsaDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RECEIPT_PDF", "quizás")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.Receipt.PDF)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

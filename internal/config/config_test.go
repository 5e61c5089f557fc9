package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/imaris-cli/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fichier_xlsx", c.InputDir)
	assert.Equal(t, "resultats_extraction.xlsx", c.OutputWorkbook)
	assert.Equal(t, "log_extraction.txt", c.LogPath)
	assert.Equal(t, extract.DefaultVariables, c.RecognizedVariables)
	assert.Equal(t, []string{".xls"}, c.Extensions)
	assert.NoError(t, c.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMARIS_LOG_PATH", "from-env.txt")
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "input_dir: exports\nextensions: [xls, .XLSX]\nrecognized_variables: [Area, Volume]\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "exports", c.InputDir)
	assert.Equal(t, "from-env.txt", c.LogPath)
	assert.Equal(t, []string{".xls", ".xlsx"}, c.Extensions)
	assert.Equal(t, []string{"Area", "Volume"}, c.RecognizedVariables)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	c.InputDir = "batch-2"
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, Save(c, p))

	back, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "batch-2", back.InputDir)
}

func TestValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)

	bad := *c
	bad.OutputWorkbook = "out.csv"
	assert.Error(t, bad.Validate())

	bad = *c
	bad.RecognizedVariables = nil
	assert.Error(t, bad.Validate())

	bad = *c
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())
}

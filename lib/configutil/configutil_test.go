package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	NotesURL string `json:"notes_url"`
	Timeout  int    `json:"timeout"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noteboard.json5")
	require.NoError(t, os.WriteFile(
		path,
		[]byte(`{notes_url: "http://example.com/board", timeout: 15}`),
		0600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "noteboard.local.json5"),
		[]byte(`{timeout: 30}`),
		0600,
	))

	out, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "http://example.com/board", out.NotesURL)
	require.Equal(t, 30, out.Timeout)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "noteboard.local.json5"),
		[]byte(`{timeout: 30}`),
		0600,
	))

	out, err := ReadConfig[testConfig](filepath.Join(dir, "noteboard.json5"))
	require.NoError(t, err)
	require.Equal(t, 30, out.Timeout)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "noteboard.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigNamesBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noteboard.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{notes_url:`), 0600))

	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "noteboard.json5")
}

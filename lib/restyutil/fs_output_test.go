package restyutil

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestFilesystemOutputWritesMessages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "http")
	out := NewFilesystemOutput(dir)
	out.Write("1", "GET /board")

	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "GET /board", string(contents))
}

func TestFilesystemOutputWipesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "http")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale"), []byte("old"), 0600))

	NewFilesystemOutput(dir)

	_, err := os.Stat(filepath.Join(dir, "stale"))
	require.True(t, os.IsNotExist(err))
}

func TestInstrumentClientDumpsToFilesystem(t *testing.T) {
	// dumps are only produced when debug logging is on
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(
		io.Discard,
		&slog.HandlerOptions{Level: slog.LevelDebug},
	)))
	defer slog.SetDefault(prev)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "http")
	client := resty.New()
	InstrumentClient(client, nil, NewFilesystemOutput(dir))

	_, err := client.R().Get(server.URL)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(contents), "GET "+server.URL)
	require.Contains(t, string(contents), "ok")
}

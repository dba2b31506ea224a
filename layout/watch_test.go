package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.json")
	require.NoError(t, Write(path, Layout{Version: FormatVersion}))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, Write(path, Layout{
		Version:  FormatVersion,
		Controls: []Descriptor{{Type: "key", ID: 1}},
	}))

	select {
	case <-w.C:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the change notification")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.json")
	require.NoError(t, Write(path, Layout{Version: FormatVersion}))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600))

	select {
	case <-w.C:
		t.Fatal("sibling file changes must not signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "controls.json"))
	require.Error(t, err)
}

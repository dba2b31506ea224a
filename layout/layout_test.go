package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() Layout {
	return Layout{
		Version: FormatVersion,
		Controls: []Descriptor{
			{Type: "key", ID: 1, X: 10, Y: 20, Width: 80, Height: 80,
				Symbol: 32, Modifier: 1, Scancode: 57, Unicode: 32,
				Label: &LabelDescriptor{X: 4, Y: 4, Width: 72, Height: 72, Alpha: 128, Image: "space.png"}},
			{Type: "dpad", ID: 2, X: 100, Y: 300, Width: 200, Height: 200},
			{Type: "toucharea", ID: 3, X: 400, Y: 100, Width: 300, Height: 200, TapSensitive: 1},
			{Type: "mousebutton", ID: 4, X: 800, Y: 400, Width: 90, Height: 90, Button: 1, Mask: 4},
			{Type: "touchscreen", ID: 5, X: 0, Y: 0, Width: 1024, Height: 600},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "controls.json")
	want := sampleLayout()

	require.NoError(t, Write(path, want))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadRejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 2, "controls": []}`), 0o600))

	_, err := Read(path)
	assert.ErrorIs(t, err, ErrVersion)
}

func TestReadRejectsTooManyControls(t *testing.T) {
	l := Layout{Version: FormatVersion}
	for i := 0; i <= MaxControls; i++ {
		l.Controls = append(l.Controls, Descriptor{Type: "key", ID: i, Width: 10, Height: 10})
	}

	path := filepath.Join(t.TempDir(), "controls.json")
	assert.ErrorIs(t, Write(path, l), ErrTooManyControls)

	// Write a too-long layout by hand to exercise the read-side check.
	data := []byte(`{"version": 1, "controls": [
		{"type":"key","id":1},{"type":"key","id":2},{"type":"key","id":3},
		{"type":"key","id":4},{"type":"key","id":5},{"type":"key","id":6},
		{"type":"key","id":7},{"type":"key","id":8},{"type":"key","id":9}]}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	_, err := Read(path)
	assert.ErrorIs(t, err, ErrTooManyControls)
}

func TestReadRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.json")
	data := []byte(`{"version": 1, "controls": [{"type": "slider", "id": 1}]}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1,`), 0o600))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestLoadPrefersUserLayout(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "controls.json")
	userPath := filepath.Join(dir, "controls-user.json")

	defaultLayout := Layout{Version: FormatVersion, Controls: []Descriptor{{Type: "key", ID: 1}}}
	userLayout := Layout{Version: FormatVersion, Controls: []Descriptor{{Type: "dpad", ID: 2}}}
	require.NoError(t, Write(defaultPath, defaultLayout))
	require.NoError(t, Write(userPath, userLayout))

	got, err := Load(defaultPath, userPath)
	require.NoError(t, err)
	assert.Equal(t, userLayout, got)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "controls.json")

	defaultLayout := Layout{Version: FormatVersion, Controls: []Descriptor{{Type: "key", ID: 1}}}
	require.NoError(t, Write(defaultPath, defaultLayout))

	got, err := Load(defaultPath, filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultLayout, got)
}

func TestLoadFailsWhenBothMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	assert.Error(t, err)
}

func TestWriteForcesVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.json")
	require.NoError(t, Write(path, Layout{Version: 99}))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, got.Version)
}

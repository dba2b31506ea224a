// Package layout reads and writes overlay control layouts as versioned
// JSON. The field names are wire-compatible with layouts produced by the
// original overlay implementations.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FormatVersion is the only layout file version this package accepts.
const FormatVersion = 1

// MaxControls bounds the number of controls in a layout.
const MaxControls = 8

var (
	// ErrVersion reports a layout file with an unsupported version field.
	ErrVersion = errors.New("unsupported layout version")

	// ErrTooManyControls reports a layout exceeding MaxControls.
	ErrTooManyControls = errors.New("too many controls in layout")
)

// Layout is the persisted form of an overlay: an ordered list of control
// descriptors. Order matters; it is the dispatch priority.
type Layout struct {
	Version  int          `json:"version"`
	Controls []Descriptor `json:"controls"`
}

// Descriptor describes one control. Per-type properties are flattened with
// omitempty, mirroring the original file format.
type Descriptor struct {
	Type   string `json:"type"`
	ID     int    `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// key
	Symbol   int `json:"symbol,omitempty"`
	Modifier int `json:"modifier,omitempty"`
	Scancode int `json:"scancode,omitempty"`
	Unicode  int `json:"unicode,omitempty"`

	// mousebutton
	Button int `json:"button,omitempty"`
	Mask   int `json:"mask,omitempty"`

	// toucharea
	TapSensitive int `json:"tapSensitive,omitempty"`

	Label *LabelDescriptor `json:"label,omitempty"`
}

// LabelDescriptor describes a control's optional visual decoration.
type LabelDescriptor struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alpha  int    `json:"alpha"`
	Image  string `json:"image,omitempty"`
}

var knownTypes = map[string]bool{
	"key":         true,
	"dpad":        true,
	"toucharea":   true,
	"mousebutton": true,
	"touchscreen": true,
}

// Read parses and validates a layout file.
func Read(path string) (Layout, error) {
	var l Layout
	data, err := os.ReadFile(path)
	if err != nil {
		return l, err
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if l.Version != FormatVersion {
		return l, fmt.Errorf("layout %s: version %d: %w", path, l.Version, ErrVersion)
	}
	if len(l.Controls) > MaxControls {
		return l, fmt.Errorf("layout %s: %d controls: %w", path, len(l.Controls), ErrTooManyControls)
	}
	for i, d := range l.Controls {
		if !knownTypes[d.Type] {
			return l, fmt.Errorf("layout %s: control %d: unknown type %q", path, i, d.Type)
		}
	}
	return l, nil
}

// Load reads the user layout, falling back to the default layout when the
// user file is missing or unreadable. An unreadable default is an error.
func Load(defaultPath, userPath string) (Layout, error) {
	if userPath != "" {
		if l, err := Read(userPath); err == nil {
			return l, nil
		}
	}
	l, err := Read(defaultPath)
	if err != nil {
		return l, fmt.Errorf("load controls: %w", err)
	}
	return l, nil
}

// Write serializes a layout, creating parent directories as needed. The
// version field is forced to FormatVersion.
func Write(path string, l Layout) error {
	l.Version = FormatVersion
	if len(l.Controls) > MaxControls {
		return fmt.Errorf("save layout %s: %d controls: %w", path, len(l.Controls), ErrTooManyControls)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// settings is the demo's runtime configuration, read from a TOML file next
// to the binary's working directory.
type settings struct {
	WindowWidth   int
	WindowHeight  int
	DefaultLayout string
	UserLayout    string
	RemoteAddr    string // empty disables the remote input server
	WatchLayout   bool
}

const settingsFile = "touchdeck.toml"

func defaultSettings() settings {
	return settings{
		WindowWidth:   1024,
		WindowHeight:  600,
		DefaultLayout: filepath.Join("data", "controls.json"),
		UserLayout:    filepath.Join("data", "controls-user.json"),
		RemoteAddr:    "",
		WatchLayout:   true,
	}
}

// loadSettings reads the settings file, writing one with defaults first if
// it does not exist yet.
func loadSettings() settings {
	conf := defaultSettings()

	if _, err := os.Stat(settingsFile); errors.Is(err, os.ErrNotExist) {
		log.Printf("initializing %s", settingsFile)
		writeSettings(&conf)
		return conf
	}

	if _, err := toml.DecodeFile(settingsFile, &conf); err != nil {
		log.Fatalf("couldn't read %s: %v", settingsFile, err)
	}
	return conf
}

func writeSettings(conf *settings) {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		log.Fatalf("couldn't encode settings: %v", err)
	}
	if err := os.WriteFile(settingsFile, buffer.Bytes(), 0o644); err != nil {
		log.Fatalf("couldn't write %s: %v", settingsFile, err)
	}
}

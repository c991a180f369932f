// Package config locates the blockgen configuration directory and loads
// user settings from it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// TemplatesFileName is the override file looked up in the config dir.
const TemplatesFileName = "templates.yaml"

// Location is a resolved configuration directory and the variable that
// chose it ("home" when none was set).
type Location struct {
	Dir    string
	Source string
}

// candidate is an environment variable that can name the config dir.
type candidate struct {
	env  string
	goos string // empty matches every platform
	sub  string // appended to the variable's value
}

var candidates = []candidate{
	{env: "BLOCKGEN_CONFIG_HOME"},
	{env: "XDG_CONFIG_HOME", sub: "blockgen"},
	{env: "APPDATA", goos: "windows", sub: "blockgen"},
}

// Locate picks the first candidate variable that is set, falling back to
// ~/.config/blockgen. Dir is empty when no home directory is known.
func Locate() Location {
	for _, c := range candidates {
		if c.goos != "" && c.goos != runtime.GOOS {
			continue
		}
		value := os.Getenv(c.env)
		if value == "" {
			continue
		}
		if c.sub != "" {
			value = filepath.Join(value, c.sub)
		}
		return Location{Dir: value, Source: c.env}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Location{Source: "home"}
	}
	return Location{Dir: filepath.Join(home, ".config", "blockgen"), Source: "home"}
}

// SettingsFile is config.yaml inside the location, or "" without a dir.
func (l Location) SettingsFile() string {
	if l.Dir == "" {
		return ""
	}
	return FilePath(l.Dir)
}

// TemplatesFile is the global template override file, or "" without a dir.
func (l Location) TemplatesFile() string {
	if l.Dir == "" {
		return ""
	}
	return filepath.Join(l.Dir, TemplatesFileName)
}

// Dir returns the blockgen configuration directory.
func Dir() string {
	return Locate().Dir
}

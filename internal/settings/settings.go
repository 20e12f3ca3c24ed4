// Package settings persists operator-facing UI preferences between runs.
// These are ephemeral shell state, not domain data; the conversion driver
// never reads them.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "settings.yaml"

// Settings are the preferences the shell remembers across sessions.
type Settings struct {
	Theme          string `yaml:"theme"`
	DefaultQuality string `yaml:"default_quality"`
	LastInputDir   string `yaml:"last_input_dir"`
	LastOutputDir  string `yaml:"last_output_dir"`
}

// Defaults returns the settings used when no file exists yet.
func Defaults() Settings {
	return Settings{
		Theme:          "System",
		DefaultQuality: "Standard",
	}
}

// Store loads and saves settings at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store under dir. Pass an empty dir to use the platform
// user-config directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "word2pdf")
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// Load reads the settings file. A missing or unreadable file yields the
// defaults; preferences are never worth failing startup over.
func (s *Store) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Defaults()
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Defaults()
	}
	return loaded
}

// Save writes the settings file, creating the directory as needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is the settings file name, relative to the working directory.
const DefaultFile = "lofi.toml"

// Store loads and persists Settings.
type Store interface {
	Exists() bool
	Load() (Settings, error)
	Save(Settings) error
}

// FileStore keeps settings in a flat TOML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

// Exists reports whether the settings file is present.
func (f *FileStore) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// Load reads and validates the settings file. A missing file yields
// ErrNotExist; a bad value yields a *ValidationError.
func (f *FileStore) Load() (Settings, error) {
	if !f.Exists() {
		return Settings{}, ErrNotExist
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(f.path), toml.Parser()); err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", f.path, err)
	}

	s := Default()
	for _, field := range Fields {
		raw := k.String(field.Key)
		if raw == "" {
			if field.Required {
				return Settings{}, &ValidationError{Key: field.Key, Msg: field.ErrMsg}
			}
			continue
		}
		if !field.Validate(raw) {
			return Settings{}, &ValidationError{Key: field.Key, Value: raw, Msg: field.ErrMsg}
		}
		field.Set(&s, raw)
	}
	return s, nil
}

// Save overwrites the settings file with every field of s.
func (f *FileStore) Save(s Settings) error {
	k := koanf.New(".")
	for _, field := range Fields {
		if err := k.Set(field.Key, field.Get(s)); err != nil {
			return fmt.Errorf("set %s: %w", field.Key, err)
		}
	}
	b, err := k.Marshal(toml.Parser())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil { //nolint:gosec // settings are not secret
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

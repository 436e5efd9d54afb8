package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/motionkit/configs"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Decode reads name and decodes it into v, picking the codec by extension
func (l *Loader) Decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadTuning loads a tuning file on top of Default and validates it.
// Fields missing from the file keep their default values.
func (l *Loader) LoadTuning(name string) (*TuningConfig, error) {
	cfg := Default()
	if err := l.Decode(name, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// Load reads the tuning file at path, or the embedded stock tuning when
// path is empty.
func Load(path string) (*TuningConfig, error) {
	if path == "" {
		return NewFSLoader(configs.FS, ".").LoadTuning(configs.Tuning)
	}
	return NewLoader(filepath.Dir(path)).LoadTuning(filepath.Base(path))
}

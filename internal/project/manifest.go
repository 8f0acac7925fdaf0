package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded ml.toml together with its location on disk.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the ml.toml schema.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Lexer       LexerConfig       `toml:"lexer"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type DiagnosticsConfig struct {
	// MaxErrors ограничивает число ошибок до остановки; 0 — без лимита.
	MaxErrors        int  `toml:"max_errors"`
	WarningsAsErrors bool `toml:"warnings_as_errors"`
	SuppressWarnings bool `toml:"suppress_warnings"`
}

type LexerConfig struct {
	RetainComments     *bool `toml:"retain_comments"`
	RetainWhitespace   *bool `toml:"retain_whitespace"`
	UnicodeIdentifiers *bool `toml:"unicode_identifiers"`
	LookupTables       *bool `toml:"lookup_tables"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Diagnostics.MaxErrors < 0 {
		return nil, fmt.Errorf("%s: [diagnostics].max_errors must be non-negative", path)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Discover walks up from startDir and loads the nearest manifest.
// ok is false when no ml.toml exists between startDir and the filesystem root.
func Discover(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	manifest, err := Load(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return manifest, true, nil
}

// Package manifest loads uriql.toml: the schema model the expressions are
// lexed and resolved against, plus the literal prefixes and custom
// functions registered on it.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up by Find.
const FileName = "uriql.toml"

// Config mirrors the TOML layout.
type Config struct {
	Model     ModelConfig      `toml:"model"`
	Lexer     LexerConfig      `toml:"lexer"`
	Enums     []EnumConfig     `toml:"enum"`
	Complex   []StructConfig   `toml:"complex"`
	Entities  []StructConfig   `toml:"entity"`
	Prefixes  []PrefixConfig   `toml:"prefix"`
	Functions []FunctionConfig `toml:"function"`
}

type ModelConfig struct {
	Namespace string `toml:"namespace"`
}

// LexerConfig holds defaults for lexer options and function lookup.
type LexerConfig struct {
	SemicolonDelimited       bool `toml:"semicolon_delimited"`
	FunctionParameters       bool `toml:"function_parameters"`
	CaseInsensitiveFunctions bool `toml:"case_insensitive_functions"`
}

type EnumConfig struct {
	Name       string   `toml:"name"`
	Underlying string   `toml:"underlying"`
	Flags      bool     `toml:"flags"`
	Members    []string `toml:"members"`
}

type StructConfig struct {
	Name string `toml:"name"`
	Base string `toml:"base"`
}

type PrefixConfig struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type FunctionConfig struct {
	Name    string   `toml:"name"`
	Returns string   `toml:"returns"`
	Args    []string `toml:"args"`
}

// Manifest is a decoded and validated manifest file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks up from startDir looking for uriql.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, meta, &cfg); err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Decode parses manifest text; name is used in error messages only.
func Decode(name, data string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if err := validate(name, meta, &cfg); err != nil {
		return nil, err
	}
	return &Manifest{Path: name, Config: cfg}, nil
}

func validate(path string, meta toml.MetaData, cfg *Config) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("model") {
		return fmt.Errorf("%s: missing [model]", path)
	}
	if !meta.IsDefined("model", "namespace") || strings.TrimSpace(cfg.Model.Namespace) == "" {
		return fmt.Errorf("%s: missing [model].namespace", path)
	}
	for i, e := range cfg.Enums {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%s: [[enum]] #%d has no name", path, i+1)
		}
	}
	for i, s := range append(cfg.Complex[:len(cfg.Complex):len(cfg.Complex)], cfg.Entities...) {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%s: structured type #%d has no name", path, i+1)
		}
	}
	for i, p := range cfg.Prefixes {
		if p.Name == "" || p.Type == "" {
			return fmt.Errorf("%s: [[prefix]] #%d needs name and type", path, i+1)
		}
	}
	for i, f := range cfg.Functions {
		if f.Name == "" || f.Returns == "" {
			return fmt.Errorf("%s: [[function]] #%d needs name and returns", path, i+1)
		}
	}
	return nil
}

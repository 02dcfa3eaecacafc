// Package config loads the defaults shared by the dts command and
// language server from a YAML, JSON or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
	"github.com/signadot/dts/format"
	"github.com/signadot/dts/parse"
)

const (
	// EnvConfig names a config file to load when none is given.
	EnvConfig = "DTS_CONFIG"
	BaseName  = "dts"
)

var (
	ErrConfig   = errors.New("config error")
	ErrNotFound = fmt.Errorf("%w: no config file", ErrConfig)
)

type Config struct {
	Path string `json:"-" yaml:"-" toml:"-"`

	// MaxDepth bounds grammar recursion, see parse.WithMaxDepth.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty" toml:"maxDepth,omitempty"`
	// Format is the output format name: tree, json or yaml.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	// Color forces colored output on or off. Unset means color when
	// writing to a terminal.
	Color *bool `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	// Jobs is the number of files parsed concurrently.
	Jobs int `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	AllowUnknownKinds bool `json:"allowUnknownKinds,omitempty" yaml:"allowUnknownKinds,omitempty" toml:"allowUnknownKinds,omitempty"`
}

func Default() *Config {
	return &Config{
		MaxDepth: parse.MaxDepth,
		Format:   format.TreeFormat.String(),
		Jobs:     runtime.GOMAXPROCS(0),
	}
}

// Find looks for dts.{yaml,yml,toml,json} in dir, in that order, and
// returns the path of the first one present.
func Find(dir string) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".toml", ".json"} {
		p := filepath.Join(dir, BaseName+ext)
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("could not stat %q: %w", p, err)
		}
	}
	return "", fmt.Errorf("%w in %q", ErrNotFound, dir)
}

// Load reads the config file at path over the defaults. The syntax is
// chosen by the file's extension. Unknown keys are errors.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(d, cfg)
	case ".yaml", ".yml", ".json":
		err = decodeYAML(d, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown config file type %q", ErrConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode %s: %w", ErrConfig, path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if debug.Config() {
		debug.Logf("loaded config %s:\n%s\n", path, debug.JSON(cfg.toMap()))
	}
	return cfg, nil
}

// FromEnv loads the file named by $DTS_CONFIG, or returns the defaults
// when it is unset.
func FromEnv() (*Config, error) {
	p := os.Getenv(EnvConfig)
	if p == "" {
		return Default(), nil
	}
	cfg, err := Load(p)
	if err != nil {
		return nil, fmt.Errorf("error loading $%s: %w", EnvConfig, err)
	}
	return cfg, nil
}

func decodeYAML(d []byte, cfg *Config) error {
	return yaml.UnmarshalWithOptions(d, cfg, yaml.Strict())
}

func decodeTOML(d []byte, cfg *Config) error {
	md, err := toml.Decode(string(d), cfg)
	if err != nil {
		return err
	}
	if un := md.Undecoded(); len(un) != 0 {
		keys := make([]string, len(un))
		for i, k := range un {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: maxDepth %d is negative", ErrConfig, c.MaxDepth)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs %d is negative", ErrConfig, c.Jobs)
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

func (c *Config) OutputFormat() (format.Format, error) {
	if c.Format == "" {
		return format.TreeFormat, nil
	}
	return format.ParseFormat(c.Format)
}

func (c *Config) ParseOptions() []parse.ParseOption {
	return []parse.ParseOption{parse.WithMaxDepth(c.MaxDepth)}
}

func (c *Config) DecodeOptions() []ast.DecodeOption {
	if c.AllowUnknownKinds {
		return []ast.DecodeOption{ast.AllowUnknownKinds()}
	}
	return nil
}

// UseColor resolves the color setting against whether output goes to a
// terminal.
func (c *Config) UseColor(terminal bool) bool {
	if c.Color == nil {
		return terminal
	}
	return *c.Color
}

func (c *Config) toMap() map[string]any {
	m := map[string]any{
		"maxDepth":          c.MaxDepth,
		"format":            c.Format,
		"jobs":              c.Jobs,
		"allowUnknownKinds": c.AllowUnknownKinds,
	}
	if c.Color != nil {
		m["color"] = *c.Color
	}
	return m
}

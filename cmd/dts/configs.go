package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/config"
	"github.com/signadot/dts/encode"
	"github.com/signadot/dts/format"
	"github.com/signadot/dts/parse"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Compact    bool   `cli:"name=compact desc='write json on one line'"`
	Names      bool   `cli:"name=n aliases=names desc='write kinds by name in json'"`
	Depth      int    `cli:"name=depth desc='maximum nesting depth of types'"`
	ConfigFile string `cli:"name=config desc='configuration file (yaml, json or toml)'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	// Config holds the file configuration once the main options are
	// parsed. Command line options take precedence over it.
	Config *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// isSet reports whether the option name was given on the command line.
func isSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) loadConfig() error {
	var (
		c   *config.Config
		err error
	)
	if cfg.ConfigFile != "" {
		c, err = config.Load(cfg.ConfigFile)
	} else {
		c, err = config.FromEnv()
	}
	if err != nil {
		return err
	}
	if isSet(cfg.Main, "depth") {
		if cfg.Depth < 0 {
			return fmt.Errorf("%w: -depth %d is negative", cli.ErrUsage, cfg.Depth)
		}
		c.MaxDepth = cfg.Depth
	}
	cfg.Config = c
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return cfg.Config.ParseOptions()
}

func (cfg *MainConfig) decodeOpts() []ast.DecodeOption {
	return cfg.Config.DecodeOptions()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	// validated when loaded
	f, _ := cfg.Config.OutputFormat()
	return f
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if isSet(cfg.Main, "color") {
		return cfg.Color
	}
	terminal := false
	if f, ok := w.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd())
	}
	return cfg.Config.UseColor(terminal)
}

// colorFunc returns the coloring function for w, or nil for plain output.
func (cfg *MainConfig) colorFunc(w io.Writer) func(encode.ColorAttr, string) string {
	if !cfg.useColor(w) {
		return nil
	}
	return encode.NewColors().Color
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeCompact(cfg.Compact),
		encode.EncodeKindNames(cfg.Names),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// inputMode is how an input's text is parsed.
type inputMode int

const (
	fileMode inputMode = iota
	typeMode
	aliasMode
)

type ParseConfig struct {
	*MainConfig

	Type  bool   `cli:"name=type desc='parse each input as a type expression'"`
	Alias bool   `cli:"name=alias desc='parse each input as a type alias'"`
	Expr  string `cli:"name=e desc='parse the given text instead of files'"`
	Jobs  int    `cli:"name=j desc='number of files parsed concurrently'"`

	Parse *cli.Command
}

func (cfg *ParseConfig) mode() (inputMode, error) {
	return modeOf(cfg.Type, cfg.Alias)
}

func (cfg *ParseConfig) jobs() int {
	if cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return max(cfg.Config.Jobs, 1)
}

func modeOf(typ, alias bool) (inputMode, error) {
	switch {
	case typ && alias:
		return 0, fmt.Errorf("%w: at most one of -type -alias", cli.ErrUsage)
	case typ:
		return typeMode, nil
	case alias:
		return aliasMode, nil
	}
	return fileMode, nil
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Type    bool `cli:"name=type desc='inputs are type expressions'"`
	Alias   bool `cli:"name=alias desc='inputs are type aliases'"`
	Load    bool `cli:"name=load desc='inputs are syntax trees in json'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	JSON    bool `cli:"name=json desc='diff the json encodings line by line'"`
	Patch   bool `cli:"name=patch desc='write the diff as a json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge  bool `cli:"name=merge desc='the patch is a json merge patch'"`
	Create bool `cli:"name=create desc='write the merge patch from the first tree to the second'"`
	String bool `cli:"name=s desc='patch arg is the patch text'"`

	Patch *cli.Command
}

type FindConfig struct {
	*MainConfig

	Query string `cli:"name=q desc='expression selecting nodes'"`
	Type  bool   `cli:"name=type desc='inputs are type expressions'"`
	Load  bool   `cli:"name=load desc='inputs are syntax trees in json'"`
	Nodes bool   `cli:"name=nodes desc='print the matching nodes, not just their paths'"`
	Jobs  int    `cli:"name=j desc='number of files parsed concurrently'"`

	Find *cli.Command
}

func (cfg *FindConfig) jobs() int {
	if cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return max(cfg.Config.Jobs, 1)
}

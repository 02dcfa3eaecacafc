package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/libdiff"
	"github.com/signadot/dts/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if count(cfg.JSON, cfg.Patch) > 1 {
		return fmt.Errorf("%w: at most one of -json -patch", cli.ErrUsage)
	}
	if count(cfg.Type, cfg.Alias, cfg.Load) > 1 {
		return fmt.Errorf("%w: at most one of -type -alias -load", cli.ErrUsage)
	}
	a, err := cfg.getTree(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.getTree(cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffTrees(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *DiffConfig) getTree(cc *cli.Context, path string) (ast.Node, error) {
	if cfg.Load {
		return loadTree(cc, path, cfg.decodeOpts()...)
	}
	mode, _ := modeOf(cfg.Type, cfg.Alias)
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	// file names are left out so that only content differs
	n, err := parseText(d, mode, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return n, nil
}

func diffTrees(cfg *DiffConfig, w io.Writer, a, b ast.Node) (bool, error) {
	if cfg.JSON {
		if cfg.Reverse {
			a, b = b, a
		}
		out, err := libdiff.DiffJSON(a, b)
		if err != nil || out == "" {
			return false, err
		}
		_, err = io.WriteString(w, out)
		return true, err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if cfg.Patch {
		p, err := patch.FromChanges(changes)
		if err != nil {
			return false, err
		}
		_, err = w.Write(append(p, '\n'))
		return true, err
	}
	if err := libdiff.Write(w, changes, cfg.colorFunc(w)); err != nil {
		return false, err
	}
	return true, nil
}

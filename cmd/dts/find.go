package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/encode"
	"github.com/signadot/dts/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Query == "" {
		return fmt.Errorf("%w: find requires -q", cli.ErrUsage)
	}
	if cfg.Type && cfg.Load {
		return fmt.Errorf("%w: at most one of -type -load", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Query)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var ins []*input
	if cfg.Load {
		for _, file := range args {
			n, err := loadTree(cc, file, cfg.decodeOpts()...)
			if err != nil {
				return err
			}
			ins = append(ins, &input{name: file, node: n})
		}
	} else {
		mode := fileMode
		if cfg.Type {
			mode = typeMode
		}
		ins, err = parseInputs(cc, args, mode, cfg.parseOpts(), cfg.jobs())
		if err != nil {
			return err
		}
		reportErrs(ins)
	}
	found := 0
	for _, in := range ins {
		ms, err := q.Find(in.node)
		if err != nil {
			return fmt.Errorf("error searching %s: %w", in.name, err)
		}
		for _, m := range ms {
			if err := writeMatch(cfg, cc.Out, in.name, m); err != nil {
				return err
			}
		}
		found += len(ms)
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeMatch(cfg *FindConfig, w io.Writer, name string, m query.Match) error {
	path, kind := m.Path, m.Node.Kind().String()
	if color := cfg.colorFunc(w); color != nil {
		path, kind = color(encode.FieldColor, path), color(encode.KindColor, kind)
	}
	if _, err := fmt.Fprintf(w, "%s:%s %s\n", name, path, kind); err != nil {
		return err
	}
	if !cfg.Nodes {
		return nil
	}
	opts := append(cfg.encOpts(w), encode.Depth(1))
	return encode.Encode(m.Node, w, opts...)
}

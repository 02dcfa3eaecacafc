package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/encode"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	mode, err := cfg.mode()
	if err != nil {
		return err
	}
	var ins []*input
	if cfg.Expr != "" {
		if len(args) != 0 {
			return fmt.Errorf("%w: -e does not take files, got %v", cli.ErrUsage, args)
		}
		n, err := parseText([]byte(cfg.Expr), mode, cfg.parseOpts())
		if n == nil {
			return err
		}
		ins = []*input{{name: "-e", node: n, err: err}}
	} else {
		if len(args) == 0 {
			args = []string{"-"}
		}
		ins, err = parseInputs(cc, args, mode, cfg.parseOpts(), cfg.jobs())
		if err != nil {
			return err
		}
	}
	if err := writeInputs(cfg.MainConfig, cc.Out, ins); err != nil {
		return err
	}
	if n := reportErrs(ins); n != 0 {
		return fmt.Errorf("%d type aliases failed to parse", n)
	}
	return nil
}

func writeInputs(cfg *MainConfig, w io.Writer, ins []*input) error {
	opts := cfg.encOpts(w)
	for i, in := range ins {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}
		if err := encode.Encode(in.node, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
	}
	return nil
}

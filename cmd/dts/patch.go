package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/encode"
	"github.com/signadot/dts/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Create {
		return createMerge(cfg, cc, args)
	}
	switch len(args) {
	case 1:
		args = append(args, "-")
	case 2:
	default:
		return fmt.Errorf("%w: patch requires a patch and at most one tree, got %v", cli.ErrUsage, args)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := loadTree(cc, args[1], cfg.decodeOpts()...)
	if err != nil {
		return err
	}
	var res ast.Node
	if cfg.Merge {
		res, err = patch.Merge(target, p, cfg.decodeOpts()...)
	} else {
		res, err = patch.Apply(target, p, cfg.decodeOpts()...)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	p, err := readInput(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

func createMerge(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch -create requires 2 trees, got %v", cli.ErrUsage, args)
	}
	from, err := loadTree(cc, args[0], cfg.decodeOpts()...)
	if err != nil {
		return err
	}
	to, err := loadTree(cc, args[1], cfg.decodeOpts()...)
	if err != nil {
		return err
	}
	p, err := patch.CreateMerge(from, to)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(append(p, '\n'))
	return err
}

package main

import (
	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ins := make([]*input, len(args))
	for i, file := range args {
		n, err := loadTree(cc, file, cfg.decodeOpts()...)
		if err != nil {
			return err
		}
		ins[i] = &input{name: file, node: n}
	}
	return writeInputs(cfg.MainConfig, cc.Out, ins)
}

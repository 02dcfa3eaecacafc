package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tree/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dts").
		WithSynopsis("dts [opts] command [opts]").
		WithDescription("dts parses the type expressions of TypeScript declaration files into syntax trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dtsMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			LoadCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			FindCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("parse [-type | -alias] [-j n] [files | -e text]").
		WithDescription(parseDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

const parseDescription = `parse parses declaration files and prints their syntax trees.

By default each input is a declaration file and every type alias in it is
parsed, including those in 'declare module' and namespace bodies. Aliases
which fail to parse are reported on stderr and the rest are printed.

With -type each input is a single type expression, and with -alias a single
type alias declaration. With -e the text given is parsed instead of files.`

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("load").
		WithAliases("l").
		WithSynopsis("load [json-files]").
		WithDescription("decode syntax trees from json and print them").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
	cfg.Load = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-type] [-r] [-json | -patch] a b").
		WithDescription("diff the syntax trees of two inputs, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("pa").
		WithSynopsis("patch [-merge] [-s] <patch> [ast-json] or patch -create a b").
		WithDescription("apply a json patch or merge patch to a syntax tree in json").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find -q <expr> [-type] [files]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find prints the nodes of syntax trees for which an expression holds.

The expression is evaluated at every node with these variables:

  kind      the node's kind name, such as "UnionType"
  text      the node's text, for identifiers and literals
  path      the node's path from the root, such as "$.types[0]"
  depth     the node's depth, 0 at the root
  parent    the kind name of the parent, "" at the root

and each field of the node by its json name (typeName, types, ...).

The functions has(field), size(), descendants(kind), docs(), isKeyword(kind)
and kindNum(kind) are also available. size() counts the nodes under and
including the node; descendants(kind) counts the nodes of a kind below it.

Example:

  dts find -q 'kind == "TypeReference" && typeName.text == "Promise"' lib.d.ts`

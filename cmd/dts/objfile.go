package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/parse"
)

// input is a tree read from a named input. For declaration files, err
// holds the errors of aliases left out of node.
type input struct {
	name string
	node ast.Node
	err  error
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// parseText parses d according to mode. In fileMode a non-nil node may be
// returned with the error of the aliases which failed.
func parseText(d []byte, mode inputMode, opts []parse.ParseOption) (ast.Node, error) {
	switch mode {
	case typeMode:
		return parse.ParseType(d, opts...)
	case aliasMode:
		decl, err := parse.ParseTypeAlias(d, opts...)
		if err != nil {
			return nil, err
		}
		return decl, nil
	}
	sf, err := parse.ParseFile(d, opts...)
	if sf == nil {
		return nil, err
	}
	return sf, err
}

// parseInputs reads and parses paths with at most jobs at a time. Results
// are in the order of paths.
func parseInputs(cc *cli.Context, paths []string, mode inputMode, opts []parse.ParseOption, jobs int) ([]*input, error) {
	res := make([]*input, len(paths))
	g := &errgroup.Group{}
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			d, err := readInput(cc, path)
			if err != nil {
				return err
			}
			pOpts := opts
			if mode == fileMode && path != "-" {
				pOpts = append([]parse.ParseOption{parse.FileName(path)}, opts...)
			}
			n, err := parseText(d, mode, pOpts)
			if n == nil {
				return fmt.Errorf("error parsing %s: %w", path, err)
			}
			res[i] = &input{name: path, node: n, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func loadTree(cc *cli.Context, path string, opts ...ast.DecodeOption) (ast.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	n, err := ast.Unmarshal(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}

// reportErrs writes the alias errors of ins to stderr and returns how
// many there were.
func reportErrs(ins []*input) int {
	n := 0
	for _, in := range ins {
		for _, err := range parse.AliasErrors(in.err) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", in.name, err)
			n++
		}
	}
	return n
}

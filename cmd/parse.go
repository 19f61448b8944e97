package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/ast"
	"github.com/kolang-lang/kolang/frontend/parser"
)

type ParseCmd struct {
	File     string `arg:"" help:"Source file to parse." type:"path"`
	Format   string `help:"Output format." enum:"sexpr,yaml" default:"sexpr" short:"f"`
	MaxDepth int    `help:"Nesting limit for statements and expressions." default:"256" name:"max-depth"`
}

func (p *ParseCmd) Run(ctx *kong.Context) error {
	data, err := os.ReadFile(p.File)
	if err != nil {
		return err
	}

	prog, diags := parser.Parse(common.FilePathClean(p.File), string(data), parser.WithMaxDepth(p.MaxDepth))

	switch p.Format {
	case "yaml":
		enc := yaml.NewEncoder(ctx.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(prog)); err != nil {
			return fmt.Errorf("failed to encode syntax tree: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		for _, fn := range prog.Funcs {
			fmt.Fprintln(ctx.Stdout, ast.Sexpr(fn))
		}
	}

	return reportDiagnostics(ctx, diags)
}

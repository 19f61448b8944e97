package main

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/kolang-lang/kolang/frontend"
	diag "github.com/kolang-lang/kolang/frontend/common"
)

type CheckCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (c *CheckCmd) Run(ctx *kong.Context) error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	pAnalysis, err := frontend.AnalyzeProject(absPath, map[string]string{})
	if err != nil {
		return err
	}

	if err := reportDiagnostics(ctx, pAnalysis.Diagnostics()); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "%d files ok\n", len(pAnalysis.Paths()))
	return nil
}

// reportDiagnostics prints diags to stderr and fails when any is an error.
func reportDiagnostics(ctx *kong.Context, diags []diag.Diagnostic) error {
	errs := 0
	for _, d := range diags {
		fmt.Fprintln(ctx.Stderr, d.String())
		if d.Severity == diag.SeverityError {
			errs++
		}
	}
	if errs > 0 {
		return fmt.Errorf("%d error(s)", errs)
	}
	return nil
}

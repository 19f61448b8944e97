package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kolang-lang/kolang/common"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

type LexCmd struct {
	File string `arg:"" help:"Source file to lex." type:"path"`
}

func (l *LexCmd) Run(ctx *kong.Context) error {
	data, err := os.ReadFile(l.File)
	if err != nil {
		return err
	}

	var diags diag.Diagnostics
	toks := lexer.Lex(common.FilePathClean(l.File), string(data), &diags)
	for _, tok := range toks {
		span := tok.Span()
		fmt.Fprintf(ctx.Stdout, "%d:%d\t%s\t%q\n", span.LineStart, span.ColumnStart, tok.Kind, tok.Lexeme)
	}

	return reportDiagnostics(ctx, diags.Sorted())
}

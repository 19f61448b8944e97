package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kolang"),
		kong.Description("Kolang front end CLI"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Lex     LexCmd     `cmd:"" help:"Print the tokens of a source file."`
	Parse   ParseCmd   `cmd:"" help:"Print the syntax tree of a source file."`
	Check   CheckCmd   `cmd:"" help:"Parse every source file of a project and report diagnostics."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
}

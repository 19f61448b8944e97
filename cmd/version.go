package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

var Version = "dev" // replaced by linker flag at build time

type VersionCmd struct{}

func (v *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintln(ctx.Stdout, "kolang version:", Version)
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kolang-lang/kolang/frontend"
	"github.com/kolang-lang/kolang/frontend/lexer"
	"github.com/kolang-lang/kolang/skeleton"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run() error {
	name := filepath.Base(n.Name)
	if !lexer.IsValidIdent(name) {
		return fmt.Errorf("%q is not a valid project name", name)
	}

	projectDir := n.Name
	if _, err := os.Stat(filepath.Join(projectDir, frontend.ConfigFile)); err == nil {
		return fmt.Errorf("%s already contains a %s", projectDir, frontend.ConfigFile)
	}
	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	// kolang.toml
	tomlContent, err := frontend.DefaultKolangToml(name).Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(projectDir, frontend.ConfigFile), []byte(tomlContent), 0644); err != nil {
		return err
	}

	for name, content := range skeleton.Files {
		path := filepath.Join(projectDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}

	return nil
}

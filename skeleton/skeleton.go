// Package skeleton holds the files `kolang new` writes into a fresh
// project, next to the generated kolang.toml.
package skeleton

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/kolang-lang/kolang/common"
)

//go:embed project
var FS embed.FS

const root = "project"

// Files maps project relative paths to their contents.
var Files map[string]string = func() map[string]string {
	out := make(map[string]string)

	err := fs.WalkDir(FS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil { // propagate unexpected I/O problems
			return err
		}
		if d.IsDir() { // nothing to read yet
			return nil
		}
		data, err := FS.ReadFile(p)
		if err != nil {
			return err
		}
		name := common.FilePathClean(strings.TrimPrefix(p, root+"/"))
		out[name] = string(data)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}()

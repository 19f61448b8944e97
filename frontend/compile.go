package frontend

import (
	"fmt"
	"os"

	protocol "github.com/gluax-lang/lsp"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/parser"
)

// Analysis is the front end result for one source file.
type Analysis struct {
	Src     string // source file name, as found in diagnostic spans
	Code    string
	Hash    string // SHA-256 of Code
	Ast     *ast.Program
	Diags   []diag.Diagnostic
	Symbols *ast.SymbolIndex
}

// ParseSource lexes and parses code. src names the file in spans and
// diagnostics and may be empty.
func ParseSource(src, code string, opts ...parser.Option) *Analysis {
	prog, diags := parser.Parse(src, code, opts...)
	return &Analysis{
		Src:     src,
		Code:    code,
		Hash:    common.SHA256Hex(code),
		Ast:     prog,
		Diags:   diags,
		Symbols: ast.IndexSymbols(prog),
	}
}

func ParseFile(path string, opts ...parser.Option) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseSource(common.FilePathClean(path), string(data), opts...), nil
}

func (a *Analysis) HasErrors() bool {
	for _, d := range a.Diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

func (a *Analysis) ProtocolDiagnostics() []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(a.Diags))
	for _, d := range a.Diags {
		out = append(out, d.ToProtocol())
	}
	return out
}

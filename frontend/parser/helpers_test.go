package parser

import (
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

func newTestLexer(code string, diags *diag.Diagnostics) *lexer.Lexer {
	return lexer.New("test.kol", code, diags)
}

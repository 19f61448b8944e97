// Package parser turns a token stream into a syntax tree. It never panics
// on malformed input: problems are reported to the diagnostics sink and the
// parser resynchronises at the next statement or function boundary.
package parser

import (
	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

type Span = common.Span

var SpanFrom = common.SpanFrom

// Parser pulls tokens from a lexer on demand. Lookahead is buffered, so
// each token is produced by the lexer exactly once.
type Parser struct {
	lx    *lexer.Lexer
	diags *diag.Diagnostics
	opts  options

	Token lexer.Token // current token
	prev  lexer.Token // last consumed token
	ahead []lexer.Token

	nesting       common.Stack[Span]
	depthReported bool
	depthSkipped  bool // the statement that hit the limit was discarded
}

// New returns a parser reading from lx. diags should be the sink lx
// reports to so that lexer and parser diagnostics end up together.
func New(lx *lexer.Lexer, diags *diag.Diagnostics, opts ...Option) *Parser {
	if diags == nil {
		diags = &diag.Diagnostics{}
	}
	p := &Parser{
		lx:    lx,
		diags: diags,
		opts:  newOptions(opts),
	}
	p.Token = lx.Next()
	p.prev = p.Token
	return p
}

// Parse lexes and parses a whole source file.
func Parse(src, code string, opts ...Option) (*ast.Program, []diag.Diagnostic) {
	var diags diag.Diagnostics
	p := New(lexer.New(src, code, &diags), &diags, opts...)
	prog := p.ParseProgram()
	return prog, diags.Sorted()
}

// ParseStmt parses code as a single statement. Tokens left after it are
// reported.
func ParseStmt(code string, opts ...Option) (ast.Stmt, []diag.Diagnostic) {
	var diags diag.Diagnostics
	p := New(lexer.New("", code, &diags), &diags, opts...)
	stmt := p.ParseStmt()
	p.expectEOF()
	return stmt, diags.Sorted()
}

// ParseExpr parses code as a single expression. Tokens left after it are
// reported.
func ParseExpr(code string, opts ...Option) (ast.Expr, []diag.Diagnostic) {
	var diags diag.Diagnostics
	p := New(lexer.New("", code, &diags), &diags, opts...)
	expr := p.ParseExpr()
	p.expectEOF()
	return expr, diags.Sorted()
}

// ParseProgram parses function declarations up to the end of input.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.span()
	var funcs []*ast.FunctionDecl

	for !lexer.IsEOF(p.Token) {
		if p.Token.Kind != lexer.KwFn {
			p.errorExpected(diag.CodeUnexpectedToken, "function declaration", "")
			p.advance()
			p.skipUntilFn()
			continue
		}
		if fn := p.parseFunction(); fn != nil {
			funcs = append(funcs, fn)
		}
	}

	return ast.NewProgram(funcs, SpanFrom(start, p.span()))
}

// ParseStmt parses one statement. It returns nil when the statement was
// malformed; the parser has then already resynchronised.
func (p *Parser) ParseStmt() ast.Stmt {
	return p.parseStmt()
}

// ParseExpr parses one expression, or returns nil after reporting why it
// could not.
func (p *Parser) ParseExpr() ast.Expr {
	return p.parseExpr()
}

func (p *Parser) expectEOF() {
	if lexer.IsEOF(p.Token) {
		return
	}
	p.errorf(diag.CodeUnexpectedToken, p.span(), "unexpected %s, expected end of input", p.Token.Describe())
}

// advance moves the parser forward by one token.
func (p *Parser) advance() {
	if lexer.IsEOF(p.Token) {
		return
	}
	p.prev = p.Token
	if len(p.ahead) > 0 {
		p.Token = p.ahead[0]
		p.ahead = p.ahead[1:]
		return
	}
	p.Token = p.lx.Next()
}

func (p *Parser) peek() lexer.Token {
	return p.peekN(1)
}

// peekN returns the token n positions after the current one.
func (p *Parser) peekN(n int) lexer.Token {
	if n <= 0 {
		return p.Token
	}
	for len(p.ahead) < n {
		last := p.Token
		if len(p.ahead) > 0 {
			last = p.ahead[len(p.ahead)-1]
		}
		if lexer.IsEOF(last) {
			return last
		}
		p.ahead = append(p.ahead, p.lx.Next())
	}
	return p.ahead[n-1]
}

func (p *Parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

// expect consumes s or reports it missing. context completes the message,
// e.g. "after expression".
func (p *Parser) expect(s, context string) bool {
	if p.tryConsume(s) {
		return true
	}
	p.errorExpected(diag.CodeMissingToken, "'"+s+"'", context)
	return false
}

func (p *Parser) expectIdent(what string) (lexer.Token, bool) {
	tok := p.Token
	if lexer.IsIdent(tok) {
		p.advance()
		return tok, true
	}
	code := diag.CodeUnexpectedToken
	if lexer.IsEOF(tok) {
		code = diag.CodeMissingToken
	}
	p.errorExpected(code, what, "")
	return tok, false
}

func (p *Parser) span() Span {
	return p.Token.Span()
}

func (p *Parser) prevSpan() Span {
	return p.prev.Span()
}

func (p *Parser) errorf(code diag.Code, span Span, format string, args ...any) {
	p.diags.Error(diag.StageParser, code, span, format, args...)
}

// errorExpected reports "expected <what> [context], found <token>" at the
// current token.
func (p *Parser) errorExpected(code diag.Code, what, context string) {
	if context != "" {
		what += " " + context
	}
	p.errorf(code, p.span(), "expected %s, found %s", what, p.Token.Describe())
}

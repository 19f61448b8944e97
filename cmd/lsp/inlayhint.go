package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/kolang-lang/kolang/frontend/ast"
)

func (h *Handler) InlayHint(p *lsp.InlayHintParams) ([]lsp.InlayHint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return h.sess.inlayHints(path, p.Range), nil
}

// inlayHints labels call arguments with the name of the parameter they
// bind to. An argument that is already a variable of that name is left
// alone.
func (s *session) inlayHints(path string, rng lsp.Range) []lsp.InlayHint {
	a := s.analysis(path)
	if a == nil || a.Ast == nil {
		return nil
	}
	ri := BuildRuneIndex(a.Code)
	kind := lsp.InlayHintKindParameter

	var hints []lsp.InlayHint
	ast.Walk(a.Ast, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		span := call.Callee.Span()
		decl := a.Symbols.DeclAt(span.LineStart, span.ColumnStart)
		if decl == nil || decl.Kind != ast.DeclFunction {
			return true
		}
		params := decl.Func.Params
		for i, arg := range call.Args {
			if i >= len(params) {
				break
			}
			name := params[i].Name.Lexeme
			if id, ok := ast.Unparen(arg).(*ast.IdentExpr); ok && id.Name() == name {
				continue
			}
			argSpan := arg.Span()
			pos := ri.Position(argSpan.LineStart, argSpan.ColumnStart)
			if !rng.Contains(pos) {
				continue
			}
			hints = append(hints, lsp.InlayHint{
				Position: pos,
				Label: []lsp.InlayHintLabelPart{
					{Value: name + ":"},
				},
				Kind: &kind,
			})
		}
		return true
	})
	return hints
}

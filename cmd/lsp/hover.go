package lsp

import (
	"fmt"

	"github.com/gluax-lang/lsp"
)

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return h.sess.hover(path, p.Position), nil
}

func (s *session) hover(path string, pos lsp.Position) *lsp.Hover {
	_, decl := s.declAt(path, pos)
	if decl == nil {
		return nil
	}

	content := fmt.Sprintf("```kolang\n%s\n```\n", decl.LSPString())

	return &lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  "markdown",
			Value: content,
		},
	}
}

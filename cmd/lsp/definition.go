package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) Definition(p *lsp.DefinitionParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return h.sess.definition(path, p.Position), nil
}

func (s *session) definition(path string, pos lsp.Position) []lsp.Location {
	_, decl := s.declAt(path, pos)
	if decl == nil {
		return nil
	}
	return []lsp.Location{decl.Span().ToLocation()}
}

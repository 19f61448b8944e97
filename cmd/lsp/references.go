package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) References(p *lsp.ReferenceParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return h.sess.references(path, p.Position, p.Context.IncludeDeclaration), nil
}

func (s *session) references(path string, pos lsp.Position, includeDecl bool) []lsp.Location {
	a, decl := s.declAt(path, pos)
	if decl == nil {
		return nil
	}

	var locations []lsp.Location
	if includeDecl {
		locations = append(locations, decl.Span().ToLocation())
	}
	for _, ref := range a.Symbols.RefsTo(decl) {
		locations = append(locations, ref.RefSpan().ToLocation())
	}
	return locations
}

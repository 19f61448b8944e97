package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/kolang-lang/kolang/frontend/lexer"
)

func (h *Handler) Complete(p *lsp.CompletionParams) (*lsp.CompletionList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return h.sess.complete(path), nil
}

// complete offers every keyword and the functions of the file. Keywords
// cover the type names as well.
func (s *session) complete(path string) *lsp.CompletionList {
	var list []lsp.CompletionItem
	for _, kw := range lexer.Keywords() {
		list = append(list, lsp.CompletionItem{
			Label: kw,
			Kind:  lsp.CompletionItemKindKeyword,
		})
	}

	if a := s.analysis(path); a != nil {
		for _, fn := range a.Symbols.Functions() {
			list = append(list, lsp.CompletionItem{
				Label:            fn.Name,
				Kind:             lsp.CompletionItemKindFunction,
				Detail:           fn.LSPString(),
				InsertText:       fn.Name + "($0)", // Insert with parens and snippet cursor
				InsertTextFormat: lsp.InsertTextFormatSnippet,
			})
		}
	}

	return &lsp.CompletionList{
		IsIncomplete: false,
		Items:        list,
	}
}

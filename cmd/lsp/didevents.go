package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	if diags, changed := h.sess.update(path, p.TextDocument.Text); changed {
		h.publish(diags)
	}
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil || len(p.ContentChanges) == 0 {
		return nil
	}
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	if diags, changed := h.sess.update(path, text); changed {
		h.publish(diags)
	}
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	h.sess.close(path)
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := uriToFilePath(p.TextDocument.URI)
	if err != nil || p.Text == nil {
		return nil
	}
	if diags, changed := h.sess.update(path, *p.Text); changed {
		h.publish(diags)
	}
	return nil
}

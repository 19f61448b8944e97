package lsp

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	protocol "github.com/gluax-lang/lsp"

	"github.com/kolang-lang/kolang/common"
)

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	mu   sync.Mutex
	sess *session
}

func NewHandler() *Handler {
	h := &Handler{
		sess: newSession(""),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		workspaceFolders := *p.WorkspaceFolders
		root, err := uriToFilePath(workspaceFolders[0].URI)
		if err != nil {
			log.Printf("invalid workspace folder: %v", err)
			return nil, err
		}
		log.Printf("root: %s", root)
		h.sess = newSession(root)
	} else {
		log.Println("no workspace folder, files are parsed on their own")
	}

	// TODO: advertise references and completion once the protocol package
	// exposes their provider options; clients that check capabilities
	// strictly will not ask for them until then.
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		InlayHintProvider: protocol.NewInlayHintProviderOptions(protocol.InlayHintOptions{
			ResolveProvider: false,
			WorkDoneProgressOptions: protocol.WorkDoneProgressOptions{
				WorkDoneProgress: false,
			},
		}),
		DefinitionProvider: true,
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// publish sends diagnostics for every file the last analysis touched.
func (h *Handler) publish(diags map[string][]protocol.Diagnostic) {
	for uri, d := range diags {
		h.PublishDiagnostics(uri, d)
	}
}

// uriToFilePath converts a file:// URI into a cleaned absolute path.
func uriToFilePath(uri string) (string, error) {
	if !strings.HasPrefix(uri, "file:") {
		return "", fmt.Errorf("unsupported URI %q (must be file)", uri)
	}
	return common.URIToFilePath(uri), nil
}

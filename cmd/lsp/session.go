package lsp

import (
	"log"

	protocol "github.com/gluax-lang/lsp"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend"
	"github.com/kolang-lang/kolang/frontend/ast"
)

// session holds the open documents and the latest analysis of them. It is
// not safe for concurrent use; Handler serialises access.
type session struct {
	workspace string
	files     map[string]string // open documents by path
	hashes    map[string]string // SHA-256 of the text last analysed per path

	project    *frontend.ProjectAnalysis
	standalone map[string]*frontend.Analysis // open files outside a project
}

func newSession(workspace string) *session {
	return &session{
		workspace:  workspace,
		files:      make(map[string]string),
		hashes:     make(map[string]string),
		standalone: make(map[string]*frontend.Analysis),
	}
}

// update records the text of an open document and re-analyses. It returns
// the diagnostics to publish per URI, or false when text is what was
// analysed last.
func (s *session) update(path, text string) (map[string][]protocol.Diagnostic, bool) {
	hash := common.SHA256Hex(text)
	if prev, ok := s.hashes[path]; ok && prev == hash {
		return nil, false
	}
	s.files[path] = text
	s.hashes[path] = hash
	return s.analyze(), true
}

func (s *session) close(path string) {
	delete(s.files, path)
	delete(s.hashes, path)
	delete(s.standalone, path)
}

func (s *session) analyze() map[string][]protocol.Diagnostic {
	out := make(map[string][]protocol.Diagnostic)
	clear(s.standalone)
	s.project = nil

	if s.workspace != "" {
		pa, err := frontend.AnalyzeProject(s.workspace, s.files)
		if err != nil {
			log.Printf("error analyzing project: %v", err)
		} else {
			s.project = pa
			configURI := common.FilePathToURI(common.FilePathClean(pa.Workspace() + "/" + frontend.ConfigFile))
			out[configURI] = []protocol.Diagnostic{}
			for _, d := range pa.ConfigDiags {
				out[configURI] = append(out[configURI], d.ToProtocol())
			}
			for _, p := range pa.Paths() {
				a := pa.File(p)
				out[common.FilePathToURI(a.Src)] = a.ProtocolDiagnostics()
			}
		}
	}

	for path, text := range s.files {
		if !common.IsSourceFile(path) || (s.project != nil && s.project.File(path) != nil) {
			continue
		}
		a := frontend.ParseSource(path, text)
		s.standalone[path] = a
		out[common.FilePathToURI(path)] = a.ProtocolDiagnostics()
	}

	return out
}

func (s *session) analysis(path string) *frontend.Analysis {
	if s.project != nil {
		if a := s.project.File(path); a != nil {
			return a
		}
	}
	return s.standalone[path]
}

// declAt resolves the symbol at an LSP position, also matching when the
// cursor sits just past the end of a name.
func (s *session) declAt(path string, pos protocol.Position) (*frontend.Analysis, *ast.Decl) {
	a := s.analysis(path)
	if a == nil {
		return nil, nil
	}
	line, col := BuildRuneIndex(a.Code).Column(pos)
	if d := a.Symbols.DeclAt(line, col); d != nil {
		return a, d
	}
	if col > 1 {
		return a, a.Symbols.DeclAt(line, col-1)
	}
	return a, nil
}

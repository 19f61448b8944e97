// Package common provides the diagnostics shared by every front end stage.
package common

import (
	"fmt"
	"slices"

	protocol "github.com/gluax-lang/lsp"
	"github.com/kolang-lang/kolang/common"
)

type (
	dSeverity  = protocol.DiagnosticSeverity
	diagnostic = protocol.Diagnostic
)

// Stage names the front end stage that produced a diagnostic.
type Stage int

const (
	StageLexer Stage = iota
	StageParser
	StageConfig
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lexer"
	case StageParser:
		return "parser"
	case StageConfig:
		return "config"
	default:
		return "unknown"
	}
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code is a stable identifier for a class of diagnostic.
type Code string

const (
	CodeInvalidCharacter         Code = "LEX_INVALID_CHARACTER"
	CodeUnterminatedChar         Code = "LEX_UNTERMINATED_CHAR"
	CodeMalformedChar            Code = "LEX_MALFORMED_CHAR"
	CodeUnterminatedString       Code = "LEX_UNTERMINATED_STRING"
	CodeUnterminatedBlockComment Code = "LEX_UNTERMINATED_BLOCK_COMMENT"
	CodeInvalidEscape            Code = "LEX_INVALID_ESCAPE"
	CodeMalformedNumber          Code = "LEX_MALFORMED_NUMBER"

	CodeUnexpectedToken     Code = "PARSE_UNEXPECTED_TOKEN"
	CodeMissingToken        Code = "PARSE_MISSING_TOKEN"
	CodeMissingExpression   Code = "PARSE_MISSING_EXPRESSION"
	CodeMalformedType       Code = "PARSE_MALFORMED_TYPE"
	CodeInvalidAssignTarget Code = "PARSE_INVALID_ASSIGN_TARGET"
	CodeDuplicateParameter  Code = "PARSE_DUPLICATE_PARAMETER"
	CodeNestingTooDeep      Code = "PARSE_NESTING_TOO_DEEP"

	CodeInvalidConfig    Code = "CONFIG_INVALID"
	CodeMissingSourceDir Code = "CONFIG_MISSING_SOURCE_DIR"
)

type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     common.Span
}

func (d Diagnostic) String() string {
	src := d.Span.Source
	if src == "" {
		src = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", src, d.Span.LineStart, d.Span.ColumnStart, d.Severity, d.Code, d.Message)
}

func (d Diagnostic) Error() string {
	return d.String()
}

// ToProtocol converts d into a language server diagnostic.
func (d Diagnostic) ToProtocol() protocol.Diagnostic {
	msg := fmt.Sprintf("%s (%s)", d.Message, d.Code)
	if d.Severity == SeverityWarning {
		return *WarningDiag(msg, d.Span)
	}
	return *ErrorDiag(msg, d.Span)
}

func NewDiagnostic(severity dSeverity, message string, span common.Span) *diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}

func ErrorDiag(msg string, span common.Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError, msg, span)
}

func WarningDiag(msg string, span common.Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityWarning, msg, span)
}

// Diagnostics collects the diagnostics of one lex/parse invocation.
// It is not safe for concurrent use; give each invocation its own sink.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) Add(diag Diagnostic) {
	d.items = append(d.items, diag)
}

func (d *Diagnostics) Error(stage Stage, code Code, span common.Span, format string, args ...any) {
	d.Add(Diagnostic{
		Stage:    stage,
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

func (d *Diagnostics) Warning(stage Stage, code Code, span common.Span, format string, args ...any) {
	d.Add(Diagnostic{
		Stage:    stage,
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

// All returns the diagnostics in the order they were reported.
func (d *Diagnostics) All() []Diagnostic {
	return slices.Clone(d.items)
}

// Sorted returns the diagnostics ordered by source position. Diagnostics
// at the same position keep their report order.
func (d *Diagnostics) Sorted() []Diagnostic {
	out := d.All()
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return a.Span.Start - b.Span.Start
	})
	return out
}

func (d *Diagnostics) Len() int {
	return len(d.items)
}

func (d *Diagnostics) HasErrors() bool {
	for _, diag := range d.items {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

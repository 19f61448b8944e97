package common

import (
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/kolang-lang/kolang/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsSink(t *testing.T) {
	var diags Diagnostics
	assert.False(t, diags.HasErrors())

	late := common.SpanNew(2, 2, 1, 1, 10, 11)
	early := common.SpanNew(1, 1, 3, 3, 2, 3)

	diags.Warning(StageConfig, CodeInvalidConfig, late, "odd value %d", 3)
	assert.False(t, diags.HasErrors())

	diags.Error(StageLexer, CodeInvalidCharacter, late, "invalid character '%c'", '@')
	diags.Error(StageParser, CodeMissingToken, early, "expected %q", ";")

	require.Equal(t, 3, diags.Len())
	assert.True(t, diags.HasErrors())

	all := diags.All()
	assert.Equal(t, "odd value 3", all[0].Message)
	assert.Equal(t, `expected ";"`, all[2].Message)

	sorted := diags.Sorted()
	assert.Equal(t, CodeMissingToken, sorted[0].Code)
	assert.Equal(t, CodeInvalidConfig, sorted[1].Code)
	assert.Equal(t, CodeInvalidCharacter, sorted[2].Code)
}

func TestDiagnosticString(t *testing.T) {
	span := common.SpanNew(4, 4, 7, 7, 0, 1)
	d := Diagnostic{Stage: StageLexer, Code: CodeInvalidCharacter, Message: "invalid character '@'", Span: span}
	assert.Equal(t, "<input>:4:7: error[LEX_INVALID_CHARACTER]: invalid character '@'", d.String())

	span.Source = "src/main.kol"
	d.Span = span
	assert.Equal(t, "src/main.kol:4:7: error[LEX_INVALID_CHARACTER]: invalid character '@'", d.Error())
	assert.Equal(t, "lexer", d.Stage.String())
}

func TestDiagnosticToProtocol(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeDuplicateParameter,
		Message:  "duplicate parameter",
		Span:     common.SpanNew(1, 1, 2, 4, 1, 4),
	}
	p := d.ToProtocol()
	require.NotNil(t, p.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *p.Severity)
	assert.Equal(t, "duplicate parameter (PARSE_DUPLICATE_PARAMETER)", p.Message)
	assert.Equal(t, uint32(1), p.Range.Start.Character)
	assert.Equal(t, uint32(4), p.Range.End.Character)
}

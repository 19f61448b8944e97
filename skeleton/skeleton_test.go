package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolang-lang/kolang/frontend/parser"
)

func TestFilesParse(t *testing.T) {
	require.Contains(t, Files, "src/main.kol")

	for name, code := range Files {
		prog, diags := parser.Parse(name, code)
		assert.Empty(t, diags, name)
		assert.NotNil(t, prog.Func("main"), name)
	}
}

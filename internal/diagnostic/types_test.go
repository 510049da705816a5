package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.NoError(t, d.WarningError())

	d.AddWarning(CodeEmptyGetAffixes, "get prefix and postfix can't both be empty", "get_prefix")
	assert.False(t, d.HasErrors())
	assert.True(t, d.HasWarnings())
	assert.NoError(t, d.Error())

	err := d.WarningError()
	require.Error(t, err)
	assert.Equal(t, "get_prefix: [empty-get-affixes] get prefix and postfix can't both be empty", err.Error())

	d.AddError(CodeDuplicateType, "declared twice", "Game.Player")
	d.AddInfo(CodeExternalBase, "base not described", "")
	assert.True(t, d.HasErrors())
	assert.Equal(t, "Game.Player: [duplicate-type] declared twice", d.Error().Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, "[external-base] base not described", all[2].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("a", "first", "")
	b.AddError("b", "second", "")
	b.AddWarning("c", "third", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[a] first; [b] second", a.Error().Error())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(42)", Severity(42).String())
}

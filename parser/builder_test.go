package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSymbolTableChargesPseudoAsFourBytes(t *testing.T) {
	lines, err := Lex("start:\n  li $t0, 100\nend:\n  nop\n")
	require.NoError(t, err)

	st, err := BuildSymbolTable(lines, 0x1000, 0x2000)
	require.NoError(t, err)

	start, ok := st.Lookup("start")
	require.True(t, ok)
	assert.EqualValues(t, 0x1000, start)

	end, ok := st.Lookup("end")
	require.True(t, ok)
	assert.EqualValues(t, 0x1004, end) // li counted as one flat instruction, not two
}

func TestBuildSymbolTableSwitchesSegments(t *testing.T) {
	lines, err := Lex(".data\nvalue:\n  .word 1\n.text\nstart:\n  nop\n")
	require.NoError(t, err)

	st, err := BuildSymbolTable(lines, 0x1000, 0x2000)
	require.NoError(t, err)

	value, ok := st.Lookup("value")
	require.True(t, ok)
	assert.EqualValues(t, 0x2000, value)

	start, ok := st.Lookup("start")
	require.True(t, ok)
	assert.EqualValues(t, 0x1000, start)
}

func TestBuildSymbolTableRejectsDuplicateLabel(t *testing.T) {
	lines, err := Lex("loop:\n  nop\nloop:\n  nop\n")
	require.NoError(t, err)

	_, err = BuildSymbolTable(lines, 0, 0x800)
	assert.Error(t, err)
}

func TestBuildSymbolTableAppliesAlignPadding(t *testing.T) {
	lines, err := Lex(".data\n  .byte 1\n  .align 4\nword_label:\n  .word 7\n")
	require.NoError(t, err)

	st, err := BuildSymbolTable(lines, 0, 0x800)
	require.NoError(t, err)

	addr, ok := st.Lookup("word_label")
	require.True(t, ok)
	assert.EqualValues(t, 0x804, addr) // 0x800 + 1 byte rounded up to a 4-byte boundary
}

func TestSymbolTableNamesExcludesReservedSegmentSymbols(t *testing.T) {
	lines, err := Lex(".data\nvalue:\n  .word 1\n.text\nstart:\n  nop\n")
	require.NoError(t, err)

	st, err := BuildSymbolTable(lines, 0x1000, 0x2000)
	require.NoError(t, err)

	names := st.Names()
	assert.ElementsMatch(t, []string{"value", "start"}, names)
	assert.NotContains(t, names, ReservedTextSymbol)
	assert.NotContains(t, names, ReservedDataSymbol)
}

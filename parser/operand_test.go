package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeOperandsRegisterAndImmediate(t *testing.T) {
	ops, err := TokenizeOperands(1, []string{"$t0", "$0", "42"})
	require.NoError(t, err)
	require.Len(t, ops, 3)

	r0, ok := ops[0].(RegisterOperand)
	require.True(t, ok)
	assert.Equal(t, 8, r0.Num)

	imm, ok := ops[2].(ImmediateOperand)
	require.True(t, ok)
	assert.Equal(t, int64(42), imm.Value)
	assert.True(t, imm.Resolved())
}

func TestTokenizeOperandsMemory(t *testing.T) {
	ops, err := TokenizeOperands(1, []string{"$t0", "8($sp)"})
	require.NoError(t, err)
	require.Len(t, ops, 2)

	mem, ok := ops[1].(MemoryOperand)
	require.True(t, ok)
	assert.Equal(t, 29, mem.Base)
	assert.EqualValues(t, 8, mem.Offset.Value)
}

func TestTokenizeOperandsMemoryWithEmptyOffset(t *testing.T) {
	ops, err := TokenizeOperands(1, []string{"($sp)"})
	require.NoError(t, err)
	mem := ops[0].(MemoryOperand)
	assert.EqualValues(t, 0, mem.Offset.Value)
}

func TestTokenizeOperandsLabel(t *testing.T) {
	ops, err := TokenizeOperands(1, []string{"loop"})
	require.NoError(t, err)
	imm := ops[0].(ImmediateOperand)
	assert.Equal(t, "loop", imm.Label)
	assert.False(t, imm.Resolved())
}

func TestTokenizeOperandsRejectsGarbage(t *testing.T) {
	_, err := TokenizeOperands(1, []string{"$bogus"})
	assert.Error(t, err)
}

func TestParseIntLiteralBases(t *testing.T) {
	cases := map[string]int64{
		"10":    10,
		"-10":   -10,
		"0x1F":  31,
		"0b101": 5,
		"0o17":  15,
		"017":   15,
	}
	for in, want := range cases {
		got, ok := parseIntLiteral(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseIntLiteralRejectsNonNumeric(t *testing.T) {
	_, ok := parseIntLiteral("notanumber")
	assert.False(t, ok)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexClassifiesLabelDirectiveInstruction(t *testing.T) {
	lines, err := Lex("loop:\n  .word 1, 2\n  add $t0, $t1, $t2 # comment\n")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, LineLabel, lines[0].Kind)
	assert.Equal(t, "loop", lines[0].Label)

	assert.Equal(t, LineDirective, lines[1].Kind)
	assert.Equal(t, ".word", lines[1].Mnemonic)
	assert.Equal(t, []string{"1", "2"}, lines[1].Args)

	assert.Equal(t, LineInstruction, lines[2].Kind)
	assert.Equal(t, "add", lines[2].Mnemonic)
	assert.Equal(t, []string{"$t0", "$t1", "$t2"}, lines[2].Args)
}

func TestLexSplitsLabelAndInstructionOnSameLine(t *testing.T) {
	lines, err := Lex("start: add $t0, $0, $0")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, LineLabel, lines[0].Kind)
	assert.Equal(t, LineInstruction, lines[1].Kind)
}

func TestLexIgnoresCommentCharsInsideQuotes(t *testing.T) {
	lines, err := Lex(`.ascii "not # a comment ; either"`)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []string{`"not # a comment ; either"`}, lines[0].Args)
}

func TestLexConvertsCharLiteral(t *testing.T) {
	lines, err := Lex("addi $t0, $0, 'A'")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "65", lines[0].Args[2])
}

func TestLexUnterminatedStringIsError(t *testing.T) {
	_, err := Lex(`.ascii "unterminated`)
	assert.Error(t, err)
}

func TestLexInvalidLabelNameIsError(t *testing.T) {
	_, err := Lex("1bad:")
	assert.Error(t, err)
}

func TestLexKeepsParenthesizedMemoryOperandIntact(t *testing.T) {
	lines, err := Lex("lw $t0, 8($sp)")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"$t0", "8($sp)"}, lines[0].Args)
}

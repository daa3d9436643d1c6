package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedProgram(t *testing.T) {
	lines, err := Lex("loop:\n  addi $t0, $0, 1\n  beq $t0, $0, loop\n  .data\n  .word 1, 2\n")
	require.NoError(t, err)
	assert.NoError(t, Validate(lines))
}

func TestValidateRejectsWrongArity(t *testing.T) {
	lines, err := Lex("add $t0, $t1\n")
	require.NoError(t, err)
	assert.Error(t, Validate(lines))
}

func TestValidateRejectsUnknownMnemonic(t *testing.T) {
	lines, err := Lex("frobnicate $t0\n")
	require.NoError(t, err)
	assert.Error(t, Validate(lines))
}

func TestValidateRejectsUnknownDirective(t *testing.T) {
	lines, err := Lex(".bogus 1\n")
	require.NoError(t, err)
	assert.Error(t, Validate(lines))
}

func TestValidateChecksAsciiArgsAreQuoted(t *testing.T) {
	lines, err := Lex(".ascii hello\n")
	require.NoError(t, err)
	assert.Error(t, Validate(lines))
}

func TestValidateAcceptsPseudoInstructions(t *testing.T) {
	lines, err := Lex("li $t0, 100\n move $t1, $t0\n")
	require.NoError(t, err)
	assert.NoError(t, Validate(lines))
}

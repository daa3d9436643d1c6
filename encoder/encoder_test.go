package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsasm/parser"
)

func ln(mnemonic string, args ...string) parser.LogicalLine {
	return parser.LogicalLine{Kind: parser.LineInstruction, Mnemonic: mnemonic, Args: args, Line: 1}
}

func TestEncodeRArith(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("add", "$8", "$9", "$10"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00), word>>26) // opcode field is 0 for R-type
	assert.Equal(t, uint32(9), word>>21&0x1F)  // rs
	assert.Equal(t, uint32(10), word>>16&0x1F) // rt
	assert.Equal(t, uint32(8), word>>11&0x1F)  // rd
	assert.Equal(t, uint32(0x20), word&0x3F)   // funct for add
}

func TestEncodeRShiftConst(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("sll", "$8", "$9", "2"))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), word>>6&0x1F)
	assert.Equal(t, uint32(0), word&0x3F)
}

func TestEncodeIArith(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("addi", "$8", "$9", "5"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x08), word>>26)
	assert.Equal(t, uint32(9), word>>21&0x1F)
	assert.Equal(t, uint32(8), word>>16&0x1F)
	assert.Equal(t, uint32(5), word&0xFFFF)
}

func TestEncodeILoadStore(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("lw", "$8", "$29", "8"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x23), word>>26)
	assert.Equal(t, uint32(29), word>>21&0x1F) // base in rs
	assert.Equal(t, uint32(8), word>>16&0x1F)  // rt
	assert.Equal(t, uint32(8), word&0xFFFF)
}

func TestEncodeIBranch2Reg(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("beq", "$8", "$0", "1"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04), word>>26)
	assert.Equal(t, uint32(1), word&0xFFFF)
}

func TestEncodeJ(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("j", "1024"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x02), word>>26)
	assert.Equal(t, uint32(1024), word&0x3FFFFFF)
}

func TestEncodeNoOperand(t *testing.T) {
	e := NewEncoder()
	word, err := e.EncodeLine(ln("syscall"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0C), word&0x3F)
}

func TestEncodeAllPreservesOrder(t *testing.T) {
	e := NewEncoder()
	words, err := e.EncodeAll([]parser.LogicalLine{ln("nop"), ln("syscall")})
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, uint32(0), words[0])
	assert.Equal(t, uint32(0x0C), words[1])
}

func TestEncodeUnknownMnemonicErrors(t *testing.T) {
	e := NewEncoder()
	_, err := e.EncodeLine(ln("frobnicate"))
	assert.Error(t, err)
}

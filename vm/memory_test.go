package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWriteReadByteAndWord(t *testing.T) {
	mem := NewMemory(16)
	require.NoError(t, mem.Write(4, []byte{0x00, 0x00, 0x01, 0x02}))

	b, err := mem.ReadByte(6)
	require.NoError(t, err)
	assert.EqualValues(t, 0x01, b)

	w, err := mem.ReadWord(4)
	require.NoError(t, err)
	assert.EqualValues(t, 0x00000102, w)
}

func TestMemoryWriteOutOfBounds(t *testing.T) {
	mem := NewMemory(4)
	err := mem.Write(2, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestMemoryReadOutOfBounds(t *testing.T) {
	mem := NewMemory(4)
	_, err := mem.ReadWord(1)
	assert.Error(t, err)
}

func TestMemoryListenerFiresOnExactAddress(t *testing.T) {
	mem := NewMemory(8)
	var seen []byte
	mem.AddListener(0, func(written []byte) { seen = written })

	require.NoError(t, mem.Write(0, []byte{9, 9}))
	assert.Equal(t, []byte{9, 9}, seen)

	seen = nil
	require.NoError(t, mem.Write(1, []byte{5}))
	assert.Nil(t, seen)
}

func TestMemoryClearZeroesAndDropsListeners(t *testing.T) {
	mem := NewMemory(4)
	fired := false
	mem.AddListener(0, func([]byte) { fired = true })
	require.NoError(t, mem.Write(0, []byte{1}))
	assert.True(t, fired)

	mem.Clear()
	b, err := mem.ReadByte(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, b)

	fired = false
	require.NoError(t, mem.Write(0, []byte{1}))
	assert.False(t, fired)
}

func TestWriteByteSatisfiesParserMemoryInterface(t *testing.T) {
	mem := NewMemory(4)
	require.NoError(t, mem.WriteByte(0, 0xAB))
	b, err := mem.ReadByte(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0xAB, b)
}

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsasm/vm"
)

func TestLoadWritesWordsBigEndianRoundTrip(t *testing.T) {
	mem := vm.NewMemory(64)
	words := []uint32{0x00000000, 0x8C080004, 0xFFFFFFFF}

	next, err := Load(mem, words, 0x400000)
	require.NoError(t, err)
	assert.EqualValues(t, 0x40000C, next)

	for i, w := range words {
		got, err := mem.ReadWord(0x400000 + uint32(i*4))
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestLoadOutOfBoundsErrors(t *testing.T) {
	mem := vm.NewMemory(4)
	_, err := Load(mem, []uint32{1, 2}, 0)
	assert.Error(t, err)
}

package vm

import "fmt"

// listener is a callback fired synchronously after a write lands at
// exactly the address it was registered on.
type listener func(written []byte)

// Memory is the external byte-addressable buffer shared by the
// assembler (during directive execution and instruction loading) and
// the datapath (during simulation): a flat array of SIZE bytes with
// aligned 8-/32-bit reads and an arbitrary-length byte-span write.
type Memory struct {
	buf       []byte
	listeners map[uint32][]listener
}

// NewMemory allocates a zeroed buffer of size bytes.
func NewMemory(size uint32) *Memory {
	return &Memory{
		buf:       make([]byte, size),
		listeners: make(map[uint32][]listener),
	}
}

// Size returns the buffer's byte capacity.
func (m *Memory) Size() uint32 { return uint32(len(m.buf)) }

// Write validates address+len(bytes) <= SIZE, writes bytes, and invokes
// any listener registered at exactly address.
func (m *Memory) Write(address uint32, bytes []byte) error {
	if uint64(address)+uint64(len(bytes)) > uint64(len(m.buf)) {
		return fmt.Errorf("memory write out of bounds: address 0x%08X length %d exceeds size 0x%08X", address, len(bytes), len(m.buf))
	}
	copy(m.buf[address:], bytes)
	for _, fn := range m.listeners[address] {
		fn(bytes)
	}
	return nil
}

// WriteByte writes a single byte, satisfying parser.Memory.
func (m *Memory) WriteByte(address uint32, b byte) error {
	return m.Write(address, []byte{b})
}

// ReadByte reads a single byte.
func (m *Memory) ReadByte(address uint32) (byte, error) {
	if uint64(address) >= uint64(len(m.buf)) {
		return 0, fmt.Errorf("memory read out of bounds: address 0x%08X exceeds size 0x%08X", address, len(m.buf))
	}
	return m.buf[address], nil
}

// ReadWord reads four consecutive bytes starting at address and
// reconstructs them as a big-endian uint32.
func (m *Memory) ReadWord(address uint32) (uint32, error) {
	if uint64(address)+4 > uint64(len(m.buf)) {
		return 0, fmt.Errorf("memory read out of bounds: address 0x%08X exceeds size 0x%08X", address, len(m.buf))
	}
	b := m.buf[address : address+4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// AddListener registers fn to fire on any write starting exactly at
// address.
func (m *Memory) AddListener(address uint32, fn func(written []byte)) {
	m.listeners[address] = append(m.listeners[address], fn)
}

// Clear zeroes every byte and drops all listeners.
func (m *Memory) Clear() {
	for i := range m.buf {
		m.buf[i] = 0
	}
	m.listeners = make(map[uint32][]listener)
}

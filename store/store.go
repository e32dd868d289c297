// Package store provides the durable byte store the selector persists into.
package store

import "github.com/rzbrk/push2talk/errcode"

// ByteStore is a byte-addressable durable store. Reads of never-written
// cells return whatever the medium holds; callers must tolerate garbage.
type ByteStore interface {
	ReadByte(addr uint32) (byte, error)
	WriteByte(addr uint32, v byte) error
}

// Mem is an in-memory ByteStore for host builds and tests.
// Fill lets a test preload arbitrary (including garbage) content.
type Mem struct {
	cells [64]byte
}

func NewMem() *Mem { return &Mem{} }

func (m *Mem) ReadByte(addr uint32) (byte, error) {
	if int(addr) >= len(m.cells) {
		return 0, errcode.StoreReadFailed
	}
	return m.cells[addr], nil
}

func (m *Mem) WriteByte(addr uint32, v byte) error {
	if int(addr) >= len(m.cells) {
		return errcode.StoreWriteFailed
	}
	m.cells[addr] = v
	return nil
}

// Fill sets every cell to v.
func (m *Mem) Fill(v byte) {
	for i := range m.cells {
		m.cells[i] = v
	}
}

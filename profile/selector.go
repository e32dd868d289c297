package profile

import (
	"github.com/rzbrk/push2talk/store"
)

// Selector is the persisted profile index. The stored byte is reduced
// modulo Count on load, so garbage or out-of-range content self-heals to a
// valid index instead of faulting.
type Selector struct {
	store store.ByteStore
	addr  uint32
	idx   int
}

func NewSelector(st store.ByteStore, addr uint32) *Selector {
	return &Selector{store: st, addr: addr}
}

// Load reads the stored byte and returns the selected index. A read error
// falls back to index 0; absence of a valid selection is not a fault.
func (s *Selector) Load() int {
	b, err := s.store.ReadByte(s.addr)
	if err != nil {
		b = 0
	}
	s.idx = int(b) % Count
	return s.idx
}

// Current returns the selected index without touching the store.
func (s *Selector) Current() int { return s.idx }

// Advance moves to the next profile and synchronously persists the new
// index before returning it. On a write error the in-RAM selection still
// advances (the keypad stays usable, durability degrades) and the error is
// reported for the caller to surface.
func (s *Selector) Advance() (int, error) {
	s.idx = (s.idx + 1) % Count
	err := s.store.WriteByte(s.addr, byte(s.idx))
	return s.idx, err
}

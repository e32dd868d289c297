//go:build rp2040 || rp2350

package store

import (
	"machine"
)

// Flash persists bytes in the last erase block of the on-board flash via
// the machine block device. Single-byte writes cost a full block
// read-erase-write cycle; the write rate here is one byte per profile
// change, so no wear-leveling is attempted.
type Flash struct{}

func NewFlash() *Flash { return &Flash{} }

// blockBuf is package-level to keep the erase-block copy off the goroutine
// stack (RP2 erase blocks are 4 KiB).
var blockBuf [4096]byte

func (f *Flash) ReadByte(addr uint32) (byte, error) {
	var b [1]byte
	if _, err := machine.Flash.ReadAt(b[:], int64(addr)); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (f *Flash) WriteByte(addr uint32, v byte) error {
	bs := machine.Flash.EraseBlockSize()
	if bs > int64(len(blockBuf)) {
		bs = int64(len(blockBuf))
	}
	block := (int64(addr) / bs) * bs
	buf := blockBuf[:bs]
	if _, err := machine.Flash.ReadAt(buf, block); err != nil {
		return err
	}
	buf[int64(addr)-block] = v
	if err := machine.Flash.EraseBlocks(block/bs, 1); err != nil {
		return err
	}
	_, err := machine.Flash.WriteAt(buf, block)
	return err
}

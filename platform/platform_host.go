//go:build !(rp2040 || rp2350)

package platform

import (
	"os"
	"sync"

	"github.com/rzbrk/push2talk/keyboard"
	"github.com/rzbrk/push2talk/store"
	"github.com/rzbrk/push2talk/x/strconvx"
)

// FakeInputPin is a settable pin for the simulator and tests. It starts
// high, matching an unpressed pulled-up button.
type FakeInputPin struct {
	mu    sync.Mutex
	level bool
}

func NewFakeInputPin() *FakeInputPin { return &FakeInputPin{level: true} }

func (p *FakeInputPin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// SetLevel drives the simulated electrical level (false = pressed).
func (p *FakeInputPin) SetLevel(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// FakeOutputPin records the last driven level.
type FakeOutputPin struct {
	mu   sync.Mutex
	high bool
}

func (p *FakeOutputPin) Set(high bool) {
	p.mu.Lock()
	p.high = high
	p.mu.Unlock()
}

func (p *FakeOutputPin) High() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.high
}

// frameLogger prints each emitted report frame as a hex line, standing in
// for the wire the EZ-Key sink would write to.
type frameLogger struct{}

func (frameLogger) Write(p []byte) (int, error) {
	line := "tx"
	for _, b := range p {
		line += " " + hex2(b)
	}
	println(line)
	return len(p), nil
}

func hex2(b byte) string {
	s := strconvx.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}

// GetResources builds the simulated keypad: fake pins, a memory store,
// and the serial sink dumping frames to stdout.
func GetResources() Resources {
	return Resources{
		Device:    "pico_default",
		Talk:      NewFakeInputPin(),
		Select:    NewFakeInputPin(),
		Indicator: &FakeOutputPin{},
		Store:     store.NewMem(),
		Sink:      keyboard.NewSerial(frameLogger{}, os.Stdout),
	}
}

// Package input polls the two physical buttons and publishes debounced
// edge events on the bus.
package input

import (
	"time"

	"github.com/rzbrk/push2talk/types"
)

// DefaultDebounce is the stable-level window used when no configuration
// overrides it.
const DefaultDebounce = 10 * time.Millisecond

// Debouncer turns raw pin samples into stable logical edges. A level must
// hold for the full interval since its last transition before it becomes
// the new stable state; contact bounce shorter than the window never
// surfaces as an edge.
//
// Update samples the pin; FallingEdge/RisingEdge report whether that
// Update latched a transition, and reset on the next Update.
type Debouncer struct {
	pin      types.InputPin
	interval time.Duration
	now      func() time.Time

	stable   bool
	lastRaw  bool
	lastFlip time.Time

	fell bool
	rose bool
}

func NewDebouncer(pin types.InputPin, interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	raw := pin.Get()
	return &Debouncer{
		pin:      pin,
		interval: interval,
		now:      time.Now,
		stable:   raw,
		lastRaw:  raw,
	}
}

// SetInterval changes the stable window. Safe only from the goroutine that
// calls Update.
func (d *Debouncer) SetInterval(interval time.Duration) {
	if interval > 0 {
		d.interval = interval
	}
}

func (d *Debouncer) Update() {
	d.fell, d.rose = false, false

	raw := d.pin.Get()
	now := d.now()
	if raw != d.lastRaw {
		d.lastFlip = now
		d.lastRaw = raw
	}
	if raw != d.stable && now.Sub(d.lastFlip) >= d.interval {
		d.stable = raw
		d.fell = !raw
		d.rose = raw
	}
}

func (d *Debouncer) FallingEdge() bool { return d.fell }
func (d *Debouncer) RisingEdge() bool  { return d.rose }

// Pressed reports the stable logical state under pull-up wiring (low =
// pressed).
func (d *Debouncer) Pressed() bool { return !d.stable }

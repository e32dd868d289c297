package input

import (
	"testing"
	"time"
)

type fakePin struct{ level bool }

func (p *fakePin) Get() bool { return p.level }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDebouncer(level bool, interval time.Duration) (*Debouncer, *fakePin, *fakeClock) {
	pin := &fakePin{level: level}
	clk := &fakeClock{t: time.Unix(1000, 0)}
	d := NewDebouncer(pin, interval)
	d.now = clk.now
	return d, pin, clk
}

func TestFallingEdgeAfterStableWindow(t *testing.T) {
	d, pin, clk := newTestDebouncer(true, 10*time.Millisecond)

	pin.level = false
	d.Update()
	if d.FallingEdge() {
		t.Fatal("edge latched before the window elapsed")
	}

	clk.advance(11 * time.Millisecond)
	d.Update()
	if !d.FallingEdge() {
		t.Fatal("expected falling edge after stable window")
	}
	if d.RisingEdge() {
		t.Fatal("unexpected rising edge")
	}
	if !d.Pressed() {
		t.Fatal("expected pressed state")
	}

	// One-shot: the next Update clears the flag.
	clk.advance(time.Millisecond)
	d.Update()
	if d.FallingEdge() {
		t.Fatal("edge reported twice")
	}
}

func TestRisingEdgeOnRelease(t *testing.T) {
	d, pin, clk := newTestDebouncer(true, 10*time.Millisecond)

	pin.level = false
	d.Update()
	clk.advance(11 * time.Millisecond)
	d.Update()

	pin.level = true
	d.Update()
	clk.advance(11 * time.Millisecond)
	d.Update()
	if !d.RisingEdge() {
		t.Fatal("expected rising edge on release")
	}
	if d.Pressed() {
		t.Fatal("expected released state")
	}
}

func TestBounceShorterThanWindowIsRejected(t *testing.T) {
	d, pin, clk := newTestDebouncer(true, 10*time.Millisecond)

	// Three transitions inside 5ms, returning to the original level.
	for _, lvl := range []bool{false, true, false} {
		pin.level = lvl
		d.Update()
		if d.FallingEdge() || d.RisingEdge() {
			t.Fatal("edge latched during bounce")
		}
		clk.advance(2 * time.Millisecond)
	}
	pin.level = true
	d.Update()

	clk.advance(15 * time.Millisecond)
	d.Update()
	if d.FallingEdge() || d.RisingEdge() {
		t.Fatal("bounce produced a spurious edge")
	}
}

func TestBounceSettlingLowYieldsExactlyOneEdge(t *testing.T) {
	d, pin, clk := newTestDebouncer(true, 10*time.Millisecond)

	edges := 0
	count := func() {
		if d.FallingEdge() || d.RisingEdge() {
			edges++
		}
	}

	// Three transitions inside 5ms, settling pressed.
	for _, lvl := range []bool{false, true, false} {
		pin.level = lvl
		d.Update()
		count()
		clk.advance(2 * time.Millisecond)
	}
	// Hold the settled level past the window.
	for i := 0; i < 20; i++ {
		clk.advance(time.Millisecond)
		d.Update()
		count()
	}
	if edges != 1 {
		t.Fatalf("bounce yielded %d edges, want exactly 1", edges)
	}
}

func TestEachFlipRestartsTheWindow(t *testing.T) {
	d, pin, clk := newTestDebouncer(true, 10*time.Millisecond)

	pin.level = false
	d.Update()
	clk.advance(8 * time.Millisecond)

	// A blip just before the window would have elapsed.
	pin.level = true
	d.Update()
	clk.advance(time.Millisecond)
	pin.level = false
	d.Update()

	// 8ms later the pre-blip duration must not count.
	clk.advance(8 * time.Millisecond)
	d.Update()
	if d.FallingEdge() {
		t.Fatal("window did not restart after the blip")
	}

	clk.advance(3 * time.Millisecond)
	d.Update()
	if !d.FallingEdge() {
		t.Fatal("expected edge once the restarted window elapsed")
	}
}

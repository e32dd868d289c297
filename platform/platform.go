// Package platform acquires the hardware resources the services run on.
// The RP2 variant maps real pins, flash, and USB; the host variant builds
// fakes so the same service graph runs in the simulator and in tests.
package platform

import (
	"github.com/rzbrk/push2talk/keyboard"
	"github.com/rzbrk/push2talk/services/announce"
	"github.com/rzbrk/push2talk/store"
	"github.com/rzbrk/push2talk/types"
)

// Resources is everything cmd/push2talk needs to wire the services.
type Resources struct {
	Device string // embedded-config key

	Talk      types.InputPin
	Select    types.InputPin
	Indicator types.OutputPin

	Store   store.ByteStore
	Sink    keyboard.Sink
	Display announce.Display // nil when not fitted
}

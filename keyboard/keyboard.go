// Package keyboard provides the key emission sinks the dispatcher writes to.
package keyboard

import (
	"github.com/rzbrk/push2talk/keys"
)

// Sink is the keyboard emission capability: stage modifier and key state,
// then commit the staged state as one report with Send. Print is a cosmetic
// text channel (profile announcements); it is best-effort and may be dropped.
type Sink interface {
	SetModifiers(mod keys.Modifier)
	SetKey(code keys.Code)
	Send() error
	Print(text string)
}

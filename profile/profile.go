// Package profile holds the shortcut profile table, the persistent
// selector, and the sequence player.
package profile

import (
	"time"

	"github.com/rzbrk/push2talk/keyboard"
	"github.com/rzbrk/push2talk/keys"
)

// Count is the number of entries in Profiles. The table below must have
// exactly this many entries; profile_test.go pins the two together.
const Count = 4

// DefaultHold is the minimum time a committed report state is held before
// the next state change. Hosts drop key events delivered faster than their
// input polling; this is a pacing constant, not a wire requirement.
const DefaultHold = 100 * time.Millisecond

// Step is one full report state: the modifiers and primary key that are
// down after the step is committed.
type Step struct {
	Mods keys.Modifier
	Key  keys.Code
}

// Profile binds a label to the key sequences played on each talk edge.
// A nil sequence is a no-op on that edge.
type Profile struct {
	Label   string
	Press   []Step
	Release []Step
}

// tap builds the canonical three-step chord: hold the modifiers, add the
// key, release everything.
func tap(mods keys.Modifier, key keys.Code) []Step {
	return []Step{
		{Mods: mods},
		{Mods: mods, Key: key},
		{},
	}
}

// Profiles is the fixed table, in selection order. Labels read
// "<press>/<release>".
var Profiles = [Count]Profile{
	{
		Label:   "CTRL+m/CTRL+m",
		Press:   tap(keys.ModLeftCtrl, keys.KeyM),
		Release: tap(keys.ModLeftCtrl, keys.KeyM),
	},
	{
		Label:   "ALT+m/ALT+m",
		Press:   tap(keys.ModLeftAlt, keys.KeyM),
		Release: tap(keys.ModLeftAlt, keys.KeyM),
	},
	{
		Label:   "WIN+F4/WIN+F4",
		Press:   tap(keys.ModLeftGUI, keys.KeyF4),
		Release: tap(keys.ModLeftGUI, keys.KeyF4),
	},
	{
		Label:   "CTRL+c/CTRL+v",
		Press:   tap(keys.ModLeftCtrl, keys.KeyC),
		Release: tap(keys.ModLeftCtrl, keys.KeyV),
	},
}

// Play commits each step of seq to the sink, holding for at least hold
// between state changes. It blocks for the whole sequence; a send error
// aborts the remainder.
func Play(sink keyboard.Sink, seq []Step, hold time.Duration) error {
	for i, st := range seq {
		if i > 0 && hold > 0 {
			time.Sleep(hold)
		}
		sink.SetModifiers(st.Mods)
		sink.SetKey(st.Key)
		if err := sink.Send(); err != nil {
			return err
		}
	}
	return nil
}

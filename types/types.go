// Package types holds the public types shared between services.
package types

// Edge is a logical button transition after debouncing.
// Press corresponds to high->low on a pulled-up pin, Release to low->high.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	default:
		return "none"
	}
}

// Button names used as bus topic tokens.
const (
	ButtonTalk   = "talk"
	ButtonSelect = "select"
)

// ButtonEvent is published on button/<name>/<edge>.
type ButtonEvent struct {
	Button string
	Edge   Edge
}

// ProfileSelected is published retained on profile/selected.
type ProfileSelected struct {
	Index int
	Label string
}

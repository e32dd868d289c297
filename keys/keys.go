// Package keys defines USB HID keyboard usage IDs and modifier bitmasks
// (HID Usage Tables, Keyboard/Keypad page 0x07).
package keys

// Modifier is the bitmask in byte 0 of a boot keyboard report.
type Modifier uint8

const (
	ModNone       Modifier = 0x00
	ModLeftCtrl   Modifier = 1 << 0
	ModLeftShift  Modifier = 1 << 1
	ModLeftAlt    Modifier = 1 << 2
	ModLeftGUI    Modifier = 1 << 3 // Windows/Command key
	ModRightCtrl  Modifier = 1 << 4
	ModRightShift Modifier = 1 << 5
	ModRightAlt   Modifier = 1 << 6
	ModRightGUI   Modifier = 1 << 7
)

// Code is a keyboard usage ID.
type Code uint8

const (
	None Code = 0x00

	KeyA Code = 0x04
	KeyB Code = 0x05
	KeyC Code = 0x06
	KeyD Code = 0x07
	KeyE Code = 0x08
	KeyF Code = 0x09
	KeyG Code = 0x0A
	KeyH Code = 0x0B
	KeyI Code = 0x0C
	KeyJ Code = 0x0D
	KeyK Code = 0x0E
	KeyL Code = 0x0F
	KeyM Code = 0x10
	KeyN Code = 0x11
	KeyO Code = 0x12
	KeyP Code = 0x13
	KeyQ Code = 0x14
	KeyR Code = 0x15
	KeyS Code = 0x16
	KeyT Code = 0x17
	KeyU Code = 0x18
	KeyV Code = 0x19
	KeyW Code = 0x1A
	KeyX Code = 0x1B
	KeyY Code = 0x1C
	KeyZ Code = 0x1D

	KeyEnter  Code = 0x28
	KeyEscape Code = 0x29
	KeySpace  Code = 0x2C

	KeyF1  Code = 0x3A
	KeyF2  Code = 0x3B
	KeyF3  Code = 0x3C
	KeyF4  Code = 0x3D
	KeyF5  Code = 0x3E
	KeyF6  Code = 0x3F
	KeyF7  Code = 0x40
	KeyF8  Code = 0x41
	KeyF9  Code = 0x42
	KeyF10 Code = 0x43
	KeyF11 Code = 0x44
	KeyF12 Code = 0x45
)

//go:build rp2040 || rp2350

package keyboard

import (
	kbd "machine/usb/hid/keyboard"

	"github.com/rzbrk/push2talk/keys"
)

// hidPort is the slice of the TinyGo keyboard port we depend on.
type hidPort interface {
	Down(c kbd.Keycode) error
	Up(c kbd.Keycode) error
	Release() error
}

// USB adapts the native USB HID keyboard port to the Sink contract.
// The port sends a report on every Down/Up, so Send only has to diff the
// staged state against what is currently held.
type USB struct {
	port hidPort

	mods keys.Modifier
	key  keys.Code

	curMods keys.Modifier
	curKey  keys.Code
}

func NewUSB() *USB {
	return &USB{port: kbd.Port()}
}

func (u *USB) SetModifiers(mod keys.Modifier) { u.mods = mod }
func (u *USB) SetKey(code keys.Code)          { u.key = code }

var modCodes = [...]struct {
	mask keys.Modifier
	code kbd.Keycode
}{
	{keys.ModLeftCtrl, kbd.KeyModifierCtrl},
	{keys.ModLeftShift, kbd.KeyModifierShift},
	{keys.ModLeftAlt, kbd.KeyModifierAlt},
	{keys.ModLeftGUI, kbd.KeyModifierGUI},
	{keys.ModRightCtrl, kbd.KeyModifierRightCtrl},
	{keys.ModRightShift, kbd.KeyModifierRightShift},
	{keys.ModRightAlt, kbd.KeyModifierRightAlt},
	{keys.ModRightGUI, kbd.KeyModifierRightGUI},
}

// usageCodes covers the usages the profile table emits.
var usageCodes = map[keys.Code]kbd.Keycode{
	keys.KeyC:  kbd.KeyC,
	keys.KeyM:  kbd.KeyM,
	keys.KeyV:  kbd.KeyV,
	keys.KeyF4: kbd.KeyF4,
}

func (u *USB) Send() error {
	if u.mods == 0 && u.key == 0 {
		u.curMods, u.curKey = 0, 0
		return u.port.Release()
	}
	for _, m := range modCodes {
		has := u.mods&m.mask != 0
		had := u.curMods&m.mask != 0
		if has && !had {
			if err := u.port.Down(m.code); err != nil {
				return err
			}
		}
		if !has && had {
			if err := u.port.Up(m.code); err != nil {
				return err
			}
		}
	}
	if u.key != u.curKey {
		if c, ok := usageCodes[u.curKey]; ok {
			if err := u.port.Up(c); err != nil {
				return err
			}
		}
		if c, ok := usageCodes[u.key]; ok {
			if err := u.port.Down(c); err != nil {
				return err
			}
		}
	}
	u.curMods, u.curKey = u.mods, u.key
	return nil
}

func (u *USB) Print(text string) {
	println("Info:", text)
}

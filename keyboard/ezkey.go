package keyboard

import (
	"io"

	"github.com/rzbrk/push2talk/keys"
)

// ezkeyFrame prefixes every raw report on the wire (Adafruit EZ-Key framing).
const ezkeyFrame = 0xFD

// Serial emits boot keyboard reports over a byte stream to an external
// HID bridge (EZ-Key style Bluetooth module or similar). Console, when set,
// receives Print text; it is kept separate so announcements never corrupt
// the report stream.
type Serial struct {
	report  keys.Report
	w       io.Writer
	console io.Writer
}

func NewSerial(w io.Writer, console io.Writer) *Serial {
	return &Serial{w: w, console: console}
}

func (s *Serial) SetModifiers(mod keys.Modifier) { s.report[0] = byte(mod) }
func (s *Serial) SetKey(code keys.Code)          { s.report[2] = byte(code) }

func (s *Serial) Send() error {
	var frame [9]byte
	frame[0] = ezkeyFrame
	copy(frame[1:], s.report[:])
	_, err := s.w.Write(frame[:])
	return err
}

func (s *Serial) Print(text string) {
	if s.console == nil {
		return
	}
	_, _ = s.console.Write([]byte(text + "\r\n"))
}

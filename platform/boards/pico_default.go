//go:build (rp2040 || rp2350) && !board_pico_oled

package boards

// Pico wiring: talk on GP14, select on GP15, onboard LED GP25 as the
// power indicator, native USB HID as the sink.
var Selected = Descriptor{
	Device:       "pico_default",
	TalkPin:      14,
	SelectPin:    15,
	IndicatorPin: 25,
	Sink:         "usb",
}

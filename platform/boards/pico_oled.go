//go:build (rp2040 || rp2350) && board_pico_oled

package boards

// Same keypad with a 128x32 SSD1306 on I2C0 for profile announcements.
var Selected = Descriptor{
	Device:       "pico_oled",
	TalkPin:      14,
	SelectPin:    15,
	IndicatorPin: 25,
	Sink:         "usb",
	OLEDAddr:     0x3C,
}

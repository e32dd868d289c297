// Package boards fixes the wiring of each supported keypad build.
package boards

// Descriptor names the wiring choices for one build: GPIO numbers, which
// emission sink is fitted, and the optional status display. It must not
// include operating parameters (debounce, hold); those come from the
// embedded device config.
type Descriptor struct {
	Device string // embedded-config key for this build

	TalkPin      int
	SelectPin    int
	IndicatorPin int

	Sink     string // "usb" or "ezkey"
	OLEDAddr uint16 // I2C address of the status OLED; 0 = not fitted
}

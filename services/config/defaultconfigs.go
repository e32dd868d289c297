package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgPicoDefault = `{
  "input": {
      "debounce_ms": 10
  },
  "dispatch": {
      "hold_ms": 100
  },
  "heartbeat": {
      "interval": 5
  }
}`

// Same keypad with the optional status OLED fitted.
const cfgPicoOLED = `{
  "input": {
      "debounce_ms": 10
  },
  "dispatch": {
      "hold_ms": 100
  },
  "heartbeat": {
      "interval": 5
  },
  "announce": {
      "display": "ssd1306"
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico_default": []byte(cfgPicoDefault),
	"pico_oled":    []byte(cfgPicoOLED),
}

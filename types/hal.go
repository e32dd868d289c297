package types

// Pull selects the input pin bias.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// InputPin is a readable GPIO. Get reports the electrical level (true = high).
type InputPin interface {
	Get() bool
}

// OutputPin is a writable GPIO.
type OutputPin interface {
	Set(high bool)
}

// PinFactory maps logical GPIO numbers to configured pins.
// Platform implementations live behind build tags; tests use fakes.
type PinFactory interface {
	Input(n int, pull Pull) (InputPin, error)
	Output(n int) (OutputPin, error)
}

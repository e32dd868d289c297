package keys

// Report is an 8-byte boot keyboard input report:
// modifiers, reserved, then up to six usage IDs.
type Report [8]byte

// Keyboard fills the report with a modifier mask and key usages.
// Unused key slots are zeroed.
func (r *Report) Keyboard(mod Modifier, codes ...Code) *Report {
	r[0] = byte(mod)
	r[1] = 0x00
	for i := 0; i < 6; i++ {
		if i < len(codes) {
			r[i+2] = byte(codes[i])
		} else {
			r[i+2] = 0x00
		}
	}
	return r
}

// Zero clears the report (all keys and modifiers released).
func (r *Report) Zero() *Report {
	*r = Report{}
	return r
}

// Modifier returns the modifier mask of the report.
func (r *Report) Modifier() Modifier { return Modifier(r[0]) }

// Key returns the first (primary) key usage of the report.
func (r *Report) Key() Code { return Code(r[2]) }

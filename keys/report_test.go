package keys

import "testing"

func TestKeyboardReportLayout(t *testing.T) {
	var r Report
	r.Keyboard(ModLeftCtrl|ModLeftAlt, KeyM)

	if r[0] != 0x05 {
		t.Fatalf("modifier byte = %#x", r[0])
	}
	if r[1] != 0 {
		t.Fatalf("reserved byte = %#x", r[1])
	}
	if r[2] != byte(KeyM) {
		t.Fatalf("key slot 0 = %#x", r[2])
	}
	for i := 3; i < 8; i++ {
		if r[i] != 0 {
			t.Fatalf("key slot %d = %#x, want empty", i-2, r[i])
		}
	}

	// Rebuilding with fewer keys must clear stale slots.
	r.Keyboard(ModNone, KeyC, KeyV)
	r.Keyboard(ModNone)
	for i := 2; i < 8; i++ {
		if r[i] != 0 {
			t.Fatalf("stale key survived in slot %d: %#x", i-2, r[i])
		}
	}
}

func TestReportAccessors(t *testing.T) {
	var r Report
	r.Keyboard(ModLeftGUI, KeyF4)
	if r.Modifier() != ModLeftGUI || r.Key() != KeyF4 {
		t.Fatalf("accessors = %v/%v", r.Modifier(), r.Key())
	}
	r.Zero()
	if r != (Report{}) {
		t.Fatalf("Zero left %v", r)
	}
}

package strconvx

import "testing"

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 3: "3", 255: "255", -12: "-12"}
	for in, want := range cases {
		if got := Itoa(in); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestAtoiRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 500, -7} {
		got, err := Atoi(Itoa(n))
		if err != nil || got != n {
			t.Errorf("Atoi(Itoa(%d)) = %d, %v", n, got, err)
		}
	}
	if _, err := Atoi("12x"); err == nil {
		t.Error("expected error for junk input")
	}
}

func TestFormatUintHex(t *testing.T) {
	if got := FormatUint(0xFD, 16); got != "fd" {
		t.Errorf("FormatUint(0xFD, 16) = %q", got)
	}
}

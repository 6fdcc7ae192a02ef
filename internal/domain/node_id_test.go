package domain

import "testing"

func TestNormalizeNodeID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trim", in: " !1234abcd ", want: "!1234abcd"},
		{name: "empty", in: " ", want: ""},
		{name: "unknown lower", in: "unknown", want: ""},
		{name: "unknown upper", in: "UNKNOWN", want: ""},
		{name: "broadcast placeholder", in: "!ffffffff", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeNodeID(tc.in); got != tc.want {
				t.Fatalf("unexpected normalized value: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
		ok   bool
	}{
		{name: "bang hex", in: "!1234abcd", want: 0x1234abcd, ok: true},
		{name: "bang upper", in: "!1234ABCD", want: 0x1234abcd, ok: true},
		{name: "0x prefix", in: "0x10", want: 16, ok: true},
		{name: "bare hex", in: "abcd", want: 0xabcd, ok: true},
		{name: "decimal", in: " 42 ", want: 42, ok: true},
		{name: "empty", in: "", ok: false},
		{name: "overflow", in: "!1ffffffff", ok: false},
		{name: "garbage", in: "!zz", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNodeID(tc.in)
			if (err == nil) != tc.ok {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected node num: got 0x%x want 0x%x", got, tc.want)
			}
		})
	}
}

func TestFormatNodeIDRoundTrip(t *testing.T) {
	for _, num := range []uint32{1, 0x1234abcd, 0xfffffffe} {
		got, err := ParseNodeID(FormatNodeID(num))
		if err != nil {
			t.Fatalf("parse %d: %v", num, err)
		}
		if got != num {
			t.Fatalf("expected %d, got %d", num, got)
		}
	}
	if got := FormatNodeID(0); got != "unknown" {
		t.Fatalf("expected unknown for zero, got %q", got)
	}
}

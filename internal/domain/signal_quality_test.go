package domain

import "testing"

func TestNodeSignalQuality(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	i := func(v int) *int { return &v }

	tests := []struct {
		name string
		snr  *float64
		rssi *int
		want SignalQuality
	}{
		{name: "unknown when never heard", want: SignalUnknown},
		{name: "unknown when rssi zero", snr: f(-1), rssi: i(0), want: SignalUnknown},
		{name: "good on exact boundary", snr: f(SNRGood), rssi: i(RSSIGood), want: SignalGood},
		{name: "fair on exact boundary", snr: f(SNRFair), rssi: i(RSSIFair), want: SignalFair},
		{name: "bad when below fair", snr: f(SNRFair - 0.1), rssi: i(RSSIFair - 1), want: SignalBad},
	}

	for _, tt := range tests {
		got := Node{SNR: tt.snr, RSSI: tt.rssi}.SignalQuality()
		if got != tt.want {
			t.Fatalf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
}

func TestNodeDisplayName(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{node: Node{Num: 1, LongName: "Base", ShortName: "BS"}, want: "Base"},
		{node: Node{Num: 1, ShortName: "BS"}, want: "BS"},
		{node: Node{Num: 1, NodeID: "!00000001"}, want: "!00000001"},
		{node: Node{Num: 0xabc}, want: "!00000abc"},
	}

	for _, tt := range tests {
		if got := tt.node.DisplayName(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

package domain

// Link quality thresholds, taken from the Meshtastic Android signal indicator.
const (
	SNRGood  = -7.0
	SNRFair  = -15.0
	RSSIGood = -115
	RSSIFair = -126
)

type SignalQuality int

const (
	SignalUnknown SignalQuality = iota
	SignalBad
	SignalFair
	SignalGood
)

func (q SignalQuality) String() string {
	switch q {
	case SignalGood:
		return "good"
	case SignalFair:
		return "fair"
	case SignalBad:
		return "bad"
	default:
		return "unknown"
	}
}

// SignalQuality grades the last received packet from n. Nodes never heard
// directly report SignalUnknown.
func (n Node) SignalQuality() SignalQuality {
	if n.RSSI == nil || n.SNR == nil || *n.RSSI == 0 {
		return SignalUnknown
	}
	snr, rssi := *n.SNR, *n.RSSI
	if snr >= SNRGood && rssi >= RSSIGood {
		return SignalGood
	}
	if snr >= SNRFair && rssi >= RSSIFair {
		return SignalFair
	}

	return SignalBad
}

// DisplayName picks the most human-friendly label known for n.
func (n Node) DisplayName() string {
	switch {
	case n.LongName != "":
		return n.LongName
	case n.ShortName != "":
		return n.ShortName
	case n.NodeID != "":
		return n.NodeID
	default:
		return FormatNodeID(n.Num)
	}
}

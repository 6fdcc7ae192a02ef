package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BroadcastNodeNum addresses every node on a channel.
const BroadcastNodeNum = ^uint32(0)

// FormatNodeID renders a node number in the canonical "!1234abcd" form.
func FormatNodeID(num uint32) string {
	if num == 0 {
		return "unknown"
	}

	return fmt.Sprintf("!%08x", num)
}

// ParseNodeID accepts "!1234abcd", "0x1234abcd", bare hex and decimal forms.
func ParseNodeID(raw string) (uint32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("node id is empty")
	}

	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(raw, "!"):
		v, err = strconv.ParseUint(strings.TrimPrefix(raw, "!"), 16, 32)
	case strings.HasPrefix(strings.ToLower(raw), "0x"):
		v, err = strconv.ParseUint(raw, 0, 32)
	case strings.ContainsAny(raw, "abcdefABCDEF"):
		v, err = strconv.ParseUint(raw, 16, 32)
	default:
		v, err = strconv.ParseUint(raw, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("parse node id %q: %w", raw, err)
	}

	return uint32(v), nil
}

// NormalizeNodeID trims and rejects placeholder/unknown node ids.
func NormalizeNodeID(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "unknown") || v == "!ffffffff" {
		return ""
	}

	return v
}

func ChatKeyForChannel(index int) string {
	return fmt.Sprintf("channel:%d", index)
}

func ChatKeyForDM(nodeID string) string {
	return "dm:" + nodeID
}

package connectors

import "time"

// ConnectionState describes the transport lifecycle of a live interface.
type ConnectionState string

const (
	ConnectionStateDisconnected ConnectionState = "disconnected"
	ConnectionStateConnecting   ConnectionState = "connecting"
	ConnectionStateConnected    ConnectionState = "connected"
	ConnectionStateReconnecting ConnectionState = "reconnecting"
)

// ConnectionStatus is a bus event snapshot of current connector status.
type ConnectionStatus struct {
	State         ConnectionState `json:"state"`
	Err           string          `json:"error,omitempty"`
	TransportName string          `json:"transport"`
	Target        string          `json:"target,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// RawFrame carries frame diagnostics for debug output.
type RawFrame struct {
	Hex string `json:"hex"`
	Len int    `json:"len"`
}

// ConfigComplete marks the end of the radio's configuration dump.
type ConfigComplete struct {
	ID       uint32    `json:"id"`
	Expected bool      `json:"expected"`
	At       time.Time `json:"at"`
}

package app

import (
	"testing"

	"github.com/skobkin/meshlink/internal/config"
	"github.com/skobkin/meshlink/internal/connectors"
)

func TestTransportNameFromConnector(t *testing.T) {
	tests := []struct {
		name      string
		connector config.ConnectorType
		want      string
	}{
		{name: "ip", connector: config.ConnectorIP, want: "ip"},
		{name: "serial", connector: config.ConnectorSerial, want: "serial"},
		{name: "none", connector: config.ConnectorNone, want: "none"},
		{name: "unknown", connector: "custom", want: "custom"},
		{name: "empty", connector: "", want: "unknown"},
	}

	for _, tc := range tests {
		if got := TransportNameFromConnector(tc.connector); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestConnectionTarget(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ConnectionConfig
		want string
	}{
		{name: "ip", cfg: config.ConnectionConfig{Connector: config.ConnectorIP, Host: "192.168.1.10", Port: 4403}, want: "192.168.1.10:4403"},
		{name: "ip ipv6", cfg: config.ConnectionConfig{Connector: config.ConnectorIP, Host: "fe80::1", Port: 4403}, want: "[fe80::1]:4403"},
		{name: "ip without port", cfg: config.ConnectionConfig{Connector: config.ConnectorIP, Host: " radio "}, want: "radio"},
		{name: "serial", cfg: config.ConnectionConfig{Connector: config.ConnectorSerial, SerialPort: "/dev/ttyACM0", SerialBaud: 115200}, want: "/dev/ttyACM0"},
		{name: "none", cfg: config.ConnectionConfig{Connector: config.ConnectorNone}, want: ""},
		{name: "unknown", cfg: config.ConnectionConfig{Connector: "custom"}, want: ""},
	}

	for _, tc := range tests {
		if got := ConnectionTarget(tc.cfg); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestConnectionStatusFromConfig(t *testing.T) {
	status := ConnectionStatusFromConfig(config.ConnectionConfig{
		Connector:  config.ConnectorSerial,
		SerialPort: "/dev/ttyACM2",
		SerialBaud: 115200,
	})

	if status.State != connectors.ConnectionStateConnecting {
		t.Fatalf("expected connecting state, got %q", status.State)
	}
	if status.TransportName != "serial" {
		t.Fatalf("expected serial transport name, got %q", status.TransportName)
	}
	if status.Target != "/dev/ttyACM2" {
		t.Fatalf("expected serial target, got %q", status.Target)
	}

	offline := ConnectionStatusFromConfig(config.ConnectionConfig{Connector: config.ConnectorNone})
	if offline.State != connectors.ConnectionStateDisconnected {
		t.Fatalf("expected disconnected state without target, got %q", offline.State)
	}
}

package app

import (
	"fmt"
	"strings"

	"github.com/skobkin/meshlink/internal/config"
	"github.com/skobkin/meshlink/internal/transport"
)

// NewTransportForConnection builds the transport for cfg. The none connector
// has no transport and yields nil.
func NewTransportForConnection(cfg config.ConnectionConfig) (transport.Transport, error) {
	switch cfg.Connector {
	case config.ConnectorNone:
		return nil, nil
	case config.ConnectorIP:
		host := strings.TrimSpace(cfg.Host)
		if host == "" {
			return nil, fmt.Errorf("ip host is required")
		}
		port := cfg.Port
		if port <= 0 {
			port = transport.DefaultIPPort
		}
		return transport.NewIPTransport(host, port), nil
	case config.ConnectorSerial:
		portName := strings.TrimSpace(cfg.SerialPort)
		if portName == "" {
			return nil, fmt.Errorf("serial port is required")
		}
		return transport.NewSerialTransport(portName, cfg.SerialBaud), nil
	default:
		return nil, fmt.Errorf("unknown connector: %q", cfg.Connector)
	}
}

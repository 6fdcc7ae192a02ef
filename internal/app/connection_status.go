package app

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/skobkin/meshlink/internal/config"
	"github.com/skobkin/meshlink/internal/connectors"
)

func TransportNameFromConnector(connector config.ConnectorType) string {
	switch connector {
	case config.ConnectorIP:
		return "ip"
	case config.ConnectorSerial:
		return "serial"
	case config.ConnectorNone:
		return "none"
	default:
		if value := strings.TrimSpace(string(connector)); value != "" {
			return value
		}
		return "unknown"
	}
}

func ConnectionTarget(cfg config.ConnectionConfig) string {
	switch cfg.Connector {
	case config.ConnectorIP:
		host := strings.TrimSpace(cfg.Host)
		if host == "" {
			return ""
		}
		if cfg.Port <= 0 {
			return host
		}
		return net.JoinHostPort(host, strconv.Itoa(cfg.Port))
	case config.ConnectorSerial:
		return strings.TrimSpace(cfg.SerialPort)
	default:
		return ""
	}
}

// ConnectionStatusFromConfig is the status reported before the radio
// publishes its first one.
func ConnectionStatusFromConfig(cfg config.ConnectionConfig) connectors.ConnectionStatus {
	status := connectors.ConnectionStatus{
		State:         connectors.ConnectionStateDisconnected,
		TransportName: TransportNameFromConnector(cfg.Connector),
		Target:        ConnectionTarget(cfg),
		Timestamp:     time.Now(),
	}
	if status.Target != "" {
		status.State = connectors.ConnectionStateConnecting
	}

	return status
}

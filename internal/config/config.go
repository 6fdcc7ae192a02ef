package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConnectorType identifies which transport backend should be used.
type ConnectorType string

// LogFormat selects the slog handler.
type LogFormat string

const (
	// ConnectorNone runs without a radio; frames only come from replays.
	ConnectorNone   ConnectorType = "none"
	ConnectorIP     ConnectorType = "ip"
	ConnectorSerial ConnectorType = "serial"

	DefaultIPPort     = 4403
	DefaultSerialBaud = 115200

	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LoggingConfig defines runtime logging behavior.
type LoggingConfig struct {
	Level     string    `json:"level" toml:"level" yaml:"level"`
	Format    LogFormat `json:"format" toml:"format" yaml:"format"`
	LogToFile bool      `json:"log_to_file" toml:"log_to_file" yaml:"log_to_file"`
	// File overrides the default log file location.
	File string `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty"`
}

// ConnectionConfig contains connector-specific connection parameters.
type ConnectionConfig struct {
	Connector  ConnectorType `json:"connector" toml:"connector" yaml:"connector"`
	Host       string        `json:"host" toml:"host" yaml:"host"`
	Port       int           `json:"port" toml:"port" yaml:"port"`
	SerialPort string        `json:"serial_port" toml:"serial_port" yaml:"serial_port"`
	SerialBaud int           `json:"serial_baud" toml:"serial_baud" yaml:"serial_baud"`
	// HeartbeatSeconds is the keepalive period; zero uses the radio default.
	HeartbeatSeconds int `json:"heartbeat_seconds,omitempty" toml:"heartbeat_seconds,omitempty" yaml:"heartbeat_seconds,omitempty"`
}

// StorageConfig controls the sqlite node cache.
type StorageConfig struct {
	Enabled bool `json:"enabled" toml:"enabled" yaml:"enabled"`
	// Path overrides the default database location.
	Path string `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`
}

// HTTPConfig controls the status endpoint serving metrics, node lists and
// the event stream. An empty address disables it.
type HTTPConfig struct {
	ListenAddr string `json:"listen_addr" toml:"listen_addr" yaml:"listen_addr"`
}

// AppConfig is the root persisted application configuration.
type AppConfig struct {
	Connection ConnectionConfig `json:"connection" toml:"connection" yaml:"connection"`
	Logging    LoggingConfig    `json:"logging" toml:"logging" yaml:"logging"`
	Storage    StorageConfig    `json:"storage" toml:"storage" yaml:"storage"`
	HTTP       HTTPConfig       `json:"http" toml:"http" yaml:"http"`
}

// Format is a config file encoding, picked by file extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath maps .toml and .yaml/.yml to their formats; anything else is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func Default() AppConfig {
	return AppConfig{
		Connection: ConnectionConfig{
			Connector:  ConnectorIP,
			Port:       DefaultIPPort,
			SerialBaud: DefaultSerialBaud,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Storage: StorageConfig{
			Enabled: true,
		},
	}
}

func Load(path string) (AppConfig, error) {
	cfg := Default()
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- path comes from the user config dir or an explicit flag.
	raw, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	format := FormatForPath(cleanPath)
	if err := decode(format, raw, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config %s: %w", format, err)
	}

	cfg.FillMissingDefaults()

	return cfg, nil
}

func (c *AppConfig) FillMissingDefaults() {
	c.Connection.Connector = ConnectorType(strings.ToLower(strings.TrimSpace(string(c.Connection.Connector))))
	if c.Connection.Connector == "" {
		c.Connection.Connector = ConnectorIP
	}
	if c.Connection.Port <= 0 {
		c.Connection.Port = DefaultIPPort
	}
	if c.Connection.SerialBaud <= 0 {
		c.Connection.SerialBaud = DefaultSerialBaud
	}
	if c.Connection.HeartbeatSeconds < 0 {
		c.Connection.HeartbeatSeconds = 0
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = normalizeLogFormat(c.Logging.Format)
}

func normalizeLogFormat(format LogFormat) LogFormat {
	switch LogFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case LogFormatJSON:
		return LogFormatJSON
	default:
		return LogFormatText
	}
}

func (c AppConfig) Validate() error {
	switch c.Connection.Connector {
	case ConnectorNone:
	case ConnectorIP:
		if strings.TrimSpace(c.Connection.Host) == "" {
			return errors.New("ip host is required")
		}
		if c.Connection.Port <= 0 || c.Connection.Port > 65535 {
			return fmt.Errorf("ip port out of range: %d", c.Connection.Port)
		}
	case ConnectorSerial:
		if strings.TrimSpace(c.Connection.SerialPort) == "" {
			return errors.New("serial port is required")
		}
		if c.Connection.SerialBaud <= 0 {
			return errors.New("serial baud must be positive")
		}
	default:
		return fmt.Errorf("unknown connector: %s", c.Connection.Connector)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %q", c.Logging.Level)
	}

	if addr := strings.TrimSpace(c.HTTP.ListenAddr); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid http listen address %q: %w", addr, err)
		}
	}

	return nil
}

func Save(path string, cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	raw, err := encode(FormatForPath(path), cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp config: %w", err)
	}

	return nil
}

func decode(format Format, raw []byte, cfg *AppConfig) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(raw, cfg)
	case FormatYAML:
		return yaml.Unmarshal(raw, cfg)
	default:
		return json.Unmarshal(raw, cfg)
	}
}

func encode(format Format, cfg AppConfig) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return json.MarshalIndent(cfg, "", "  ")
	}
}

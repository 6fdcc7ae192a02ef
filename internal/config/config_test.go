package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppConfigFillMissingDefaults(t *testing.T) {
	cfg := AppConfig{}
	cfg.FillMissingDefaults()

	if cfg.Connection.Connector != ConnectorIP {
		t.Fatalf("expected default connector %q, got %q", ConnectorIP, cfg.Connection.Connector)
	}
	if cfg.Connection.Port != DefaultIPPort {
		t.Fatalf("expected default port %d, got %d", DefaultIPPort, cfg.Connection.Port)
	}
	if cfg.Connection.SerialBaud != DefaultSerialBaud {
		t.Fatalf("expected default serial baud %d, got %d", DefaultSerialBaud, cfg.Connection.SerialBaud)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != LogFormatText {
		t.Fatalf("expected default log format %q, got %q", LogFormatText, cfg.Logging.Format)
	}
}

func TestAppConfigFillMissingDefaultsNormalizesValues(t *testing.T) {
	cfg := AppConfig{
		Connection: ConnectionConfig{Connector: " Serial ", HeartbeatSeconds: -5},
		Logging:    LoggingConfig{Format: "JSON"},
	}
	cfg.FillMissingDefaults()

	if cfg.Connection.Connector != ConnectorSerial {
		t.Fatalf("expected connector to normalize to %q, got %q", ConnectorSerial, cfg.Connection.Connector)
	}
	if cfg.Connection.HeartbeatSeconds != 0 {
		t.Fatalf("expected negative heartbeat to reset, got %d", cfg.Connection.HeartbeatSeconds)
	}
	if cfg.Logging.Format != LogFormatJSON {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}

	cfg.Logging.Format = "yaml"
	cfg.FillMissingDefaults()
	if cfg.Logging.Format != LogFormatText {
		t.Fatalf("expected unknown format to fall back to text, got %q", cfg.Logging.Format)
	}
}

func TestDefaultEnablesStorage(t *testing.T) {
	cfg := Default()
	if !cfg.Storage.Enabled {
		t.Fatalf("expected storage to be enabled by default")
	}
	if cfg.HTTP.ListenAddr != "" {
		t.Fatalf("expected http endpoint to be disabled by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPreservesExplicitFalseValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
  "connection": {
    "connector": "ip",
    "host": "192.168.0.1"
  },
  "storage": {
    "enabled": false
  }
}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Enabled {
		t.Fatalf("expected storage.enabled=false to be preserved")
	}
	if cfg.Connection.Port != DefaultIPPort {
		t.Fatalf("expected missing port to default to %d, got %d", DefaultIPPort, cfg.Connection.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected missing logging section to keep defaults, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"connection":`), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.Connection = ConnectionConfig{Connector: ConnectorSerial, SerialPort: "/dev/ttyACM0", SerialBaud: 921600, Port: DefaultIPPort}
	cfg.HTTP.ListenAddr = "127.0.0.1:9464"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestSaveAndLoadRoundTripAllFormats(t *testing.T) {
	cfg := Default()
	cfg.Connection = ConnectionConfig{Connector: ConnectorIP, Host: "radio.local", Port: 4403, SerialBaud: DefaultSerialBaud, HeartbeatSeconds: 30}
	cfg.Logging = LoggingConfig{Level: "debug", Format: LogFormatJSON, LogToFile: true, File: "/var/log/meshlink.log"}
	cfg.Storage = StorageConfig{Enabled: false, Path: "/tmp/cache.db"}

	for _, name := range []string{"config.json", "config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save config: %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load config: %v", name, err)
		}
		if loaded != cfg {
			t.Fatalf("%s: round trip mismatch:\n got %+v\nwant %+v", name, loaded, cfg)
		}
	}
}

func TestLoadTOMLKeepsDefaultsForMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := `[connection]
connector = "serial"
serial_port = "/dev/ttyUSB0"

[storage]
enabled = false
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Connection.Connector != ConnectorSerial || cfg.Connection.SerialPort != "/dev/ttyUSB0" {
		t.Fatalf("unexpected connection: %+v", cfg.Connection)
	}
	if cfg.Connection.SerialBaud != DefaultSerialBaud {
		t.Fatalf("expected default baud, got %d", cfg.Connection.SerialBaud)
	}
	if cfg.Storage.Enabled {
		t.Fatalf("expected storage.enabled=false to be preserved")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default logging, got %+v", cfg.Logging)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "config.json", want: FormatJSON},
		{path: "CONFIG.TOML", want: FormatTOML},
		{path: "a/b/config.yaml", want: FormatYAML},
		{path: "config.yml", want: FormatYAML},
		{path: "config", want: FormatJSON},
	}

	for _, tc := range tests {
		if got := FormatForPath(tc.path); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	if err := Save(path, cfg); err == nil {
		t.Fatalf("expected validation error for ip connector without host")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, got %v", err)
	}
}

func TestAppConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{
			name: "valid none",
			cfg:  AppConfig{Connection: ConnectionConfig{Connector: ConnectorNone}},
		},
		{
			name: "valid ip",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector: ConnectorIP,
					Host:      "192.168.1.10",
					Port:      4403,
				},
			},
		},
		{
			name: "invalid ip without host",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector: ConnectorIP,
					Port:      4403,
				},
			},
			wantErr: true,
		},
		{
			name: "invalid ip port",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector: ConnectorIP,
					Host:      "radio.local",
					Port:      70000,
				},
			},
			wantErr: true,
		},
		{
			name: "valid serial",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector:  ConnectorSerial,
					SerialPort: "/dev/ttyACM0",
					SerialBaud: 115200,
				},
			},
		},
		{
			name: "invalid serial without port",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector:  ConnectorSerial,
					SerialBaud: 115200,
				},
			},
			wantErr: true,
		},
		{
			name: "invalid serial with non-positive baud",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector:  ConnectorSerial,
					SerialPort: "COM3",
					SerialBaud: 0,
				},
			},
			wantErr: true,
		},
		{
			name: "unknown connector",
			cfg: AppConfig{
				Connection: ConnectionConfig{
					Connector: ConnectorType("bluetooth"),
				},
			},
			wantErr: true,
		},
		{
			name: "bad log level",
			cfg: AppConfig{
				Connection: ConnectionConfig{Connector: ConnectorNone},
				Logging:    LoggingConfig{Level: "loud"},
			},
			wantErr: true,
		},
		{
			name: "bad http address",
			cfg: AppConfig{
				Connection: ConnectionConfig{Connector: ConnectorNone},
				HTTP:       HTTPConfig{ListenAddr: "9464"},
			},
			wantErr: true,
		},
		{
			name: "http on all interfaces",
			cfg: AppConfig{
				Connection: ConnectionConfig{Connector: ConnectorNone},
				HTTP:       HTTPConfig{ListenAddr: ":9464"},
			},
		},
	}

	for _, tc := range tests {
		err := tc.cfg.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"dsipanel/internal/hw"
)

func TestLoad_FirstRunWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Channel.Driver != hw.DriverDryRun || cfg.Variant == "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", fi.Mode().Perm())
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Variant != cfg.Variant || again.MQTT.Topic != cfg.MQTT.Topic {
		t.Errorf("round trip changed config: %+v", again)
	}
}

func TestLoad_PartialFileNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
variant: powkiddy,rk2023-panel
reset:
  driver: gpiocdev
  chip: gpiochip3
  line: 12
  active_low: true
power:
  driver: pmic
  bus: "1"
  addr: 0x20
  reg: 0x12
  mask: 0x40
channel:
  driver: serial
  device: /dev/ttyUSB0
schedule:
  off: "0 23 * * *"
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Reset.Chip != "gpiochip3" || cfg.Reset.Line != 12 || !cfg.Reset.ActiveLow {
		t.Errorf("reset = %+v", cfg.Reset)
	}
	if cfg.Power.Addr != 0x20 || cfg.Power.Reg != 0x12 || cfg.Power.Mask != 0x40 {
		t.Errorf("power = %+v", cfg.Power)
	}
	if cfg.Channel.Baud != 115200 {
		t.Errorf("baud = %d, want default 115200", cfg.Channel.Baud)
	}
	if cfg.LogLevel != "info" || cfg.MQTT.Port != 1883 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Schedule.Off != "0 23 * * *" || cfg.Schedule.On != "" {
		t.Errorf("schedule = %+v", cfg.Schedule)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("variant: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no variant", func(c *Config) { c.Variant = "" }},
		{"spi without dc", func(c *Config) { c.Channel = hw.ChannelConfig{Driver: hw.DriverSPI} }},
		{"serial without device", func(c *Config) { c.Channel = hw.ChannelConfig{Driver: hw.DriverSerial} }},
		{"pmic without mask", func(c *Config) { c.Power = hw.LineConfig{Driver: hw.DriverPMIC, Addr: 0x20} }},
		{"periph without pin", func(c *Config) { c.Reset = hw.LineConfig{Driver: hw.DriverPeriph} }},
		{"gpiocdev without chip", func(c *Config) { c.Power = hw.LineConfig{Driver: hw.DriverGPIOCdev} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestNormalize_DropsEmptyBasicAuth(t *testing.T) {
	cfg := &Config{BasicAuth: &BasicAuthConfig{}}
	cfg.Normalize()
	if cfg.BasicAuth != nil {
		t.Error("empty basic_auth should disable auth")
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dsipanel/internal/hw"
	"dsipanel/internal/notify"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// ScheduleConfig holds cron specs for unattended blanking. Either may be
// empty.
type ScheduleConfig struct {
	// Off unprepares the panel, e.g. "0 23 * * *".
	Off string `yaml:"off" json:"off"`
	// On prepares it again.
	On string `yaml:"on" json:"on"`
}

// Config is the top-level application configuration.
type Config struct {
	// Variant is the compatible id of the attached panel, e.g.
	// "anbernic,rg353p-panel".
	Variant string `yaml:"variant" json:"variant"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Listen is the HTTP listen address for the API. Empty disables it.
	Listen string `yaml:"listen" json:"listen"`

	Reset   hw.LineConfig    `yaml:"reset" json:"reset"`
	Power   hw.LineConfig    `yaml:"power" json:"power"`
	Channel hw.ChannelConfig `yaml:"channel" json:"channel"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule"`

	MQTT notify.Config `yaml:"mqtt" json:"mqtt"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all endpoints
	// except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration. It drives no
// hardware: the channel is a dry run and the rail is always on.
func DefaultConfig() *Config {
	return &Config{
		Variant:  "anbernic,rg353p-panel",
		LogLevel: "info",
		Listen:   "127.0.0.1:8090",
		Reset:    hw.LineConfig{Driver: hw.DriverNone},
		Power:    hw.LineConfig{Driver: hw.DriverNone},
		Channel:  hw.ChannelConfig{Driver: hw.DriverDryRun},
		MQTT:     notify.Config{Port: 1883, Topic: "panelctl/state"},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Reset.Driver == "" {
		c.Reset.Driver = hw.DriverNone
	}
	if c.Power.Driver == "" {
		c.Power.Driver = hw.DriverNone
	}
	if c.Channel.Driver == "" {
		c.Channel.Driver = hw.DriverDryRun
	}
	if c.Channel.Driver == hw.DriverSerial && c.Channel.Baud == 0 {
		c.Channel.Baud = 115200
	}
	if c.MQTT.Port == 0 {
		c.MQTT.Port = 1883
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = "panelctl/state"
	}
	if c.BasicAuth != nil && c.BasicAuth.Username == "" && c.BasicAuth.Password == "" {
		c.BasicAuth = nil
	}
}

// Validate reports settings that cannot work regardless of hardware.
func (c *Config) Validate() error {
	if c.Variant == "" {
		return errors.New("config: variant is empty")
	}
	switch c.Channel.Driver {
	case hw.DriverSPI:
		if c.Channel.DCPin == "" {
			return errors.New("config: channel.dc_pin is required for the spi driver")
		}
	case hw.DriverSerial:
		if c.Channel.Device == "" {
			return errors.New("config: channel.device is required for the serial driver")
		}
	}
	if c.Power.Driver == hw.DriverPMIC && (c.Power.Addr == 0 || c.Power.Mask == 0) {
		return errors.New("config: power.addr and power.mask are required for the pmic driver")
	}
	for name, l := range map[string]hw.LineConfig{"reset": c.Reset, "power": c.Power} {
		if l.Driver == hw.DriverPeriph && l.Pin == "" {
			return fmt.Errorf("config: %s.pin is required for the periph driver", name)
		}
		if l.Driver == hw.DriverGPIOCdev && l.Chip == "" {
			return fmt.Errorf("config: %s.chip is required for the gpiocdev driver", name)
		}
	}
	return nil
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with 0600
// permissions, creating the parent directory with 0700 if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".panelctl-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

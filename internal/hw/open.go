package hw

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"

	"dsipanel/internal/dsi"
	appLog "dsipanel/internal/log"
	"dsipanel/internal/power"
)

// Driver names accepted in LineConfig and ChannelConfig.
const (
	DriverNone     = "none"
	DriverPeriph   = "periph"
	DriverGPIOCdev = "gpiocdev"
	DriverPMIC     = "pmic"
	DriverSPI      = "spi"
	DriverSerial   = "serial"
	DriverDryRun   = "dryrun"
)

// LineConfig selects how a reset line or supply rail is driven.
type LineConfig struct {
	Driver string `yaml:"driver" json:"driver"`

	// periph
	Pin string `yaml:"pin,omitempty" json:"pin,omitempty"`
	// gpiocdev
	Chip string `yaml:"chip,omitempty" json:"chip,omitempty"`
	Line int    `yaml:"line,omitempty" json:"line,omitempty"`

	ActiveLow bool `yaml:"active_low,omitempty" json:"active_low,omitempty"`

	// pmic (power only)
	Bus  string `yaml:"bus,omitempty" json:"bus,omitempty"`
	Addr uint16 `yaml:"addr,omitempty" json:"addr,omitempty"`
	Reg  uint8  `yaml:"reg,omitempty" json:"reg,omitempty"`
	Mask uint8  `yaml:"mask,omitempty" json:"mask,omitempty"`
}

// ChannelConfig selects the command transport.
type ChannelConfig struct {
	Driver string `yaml:"driver" json:"driver"`

	// spi
	Port  string `yaml:"port,omitempty" json:"port,omitempty"`
	DCPin string `yaml:"dc_pin,omitempty" json:"dc_pin,omitempty"`
	MaxHz int64  `yaml:"max_hz,omitempty" json:"max_hz,omitempty"`

	// serial
	Device string `yaml:"device,omitempty" json:"device,omitempty"`
	Baud   int    `yaml:"baud,omitempty" json:"baud,omitempty"`
}

// Bindings is the opened hardware for one panel.
type Bindings struct {
	Rail    power.Rail
	Reset   power.ResetLine // nil when the board has no reset line
	Channel dsi.Channel

	closers []io.Closer
}

// Open resolves the three configs into live handles. On error everything
// opened so far is closed again.
func Open(reset, rail LineConfig, channel ChannelConfig) (*Bindings, error) {
	b := &Bindings{}
	if err := b.openReset(reset); err != nil {
		return nil, errors.Join(err, b.Close())
	}
	if err := b.openRail(rail); err != nil {
		return nil, errors.Join(err, b.Close())
	}
	if err := b.openChannel(channel); err != nil {
		return nil, errors.Join(err, b.Close())
	}
	return b, nil
}

func (b *Bindings) openReset(cfg LineConfig) error {
	switch cfg.Driver {
	case "", DriverNone:
		return nil
	case DriverPeriph:
		l, err := OpenPeriphLine(cfg.Pin, cfg.ActiveLow)
		if err != nil {
			return err
		}
		b.Reset = l
	case DriverGPIOCdev:
		l, err := OpenCdevLine(cfg.Chip, cfg.Line, cfg.ActiveLow)
		if err != nil {
			return err
		}
		b.Reset = l
		b.closers = append(b.closers, l)
	default:
		return fmt.Errorf("hw: unknown reset driver %q", cfg.Driver)
	}
	return nil
}

func (b *Bindings) openRail(cfg LineConfig) error {
	switch cfg.Driver {
	case "", DriverNone:
		b.Rail = NopRail{}
	case DriverPeriph:
		l, err := OpenPeriphLine(cfg.Pin, cfg.ActiveLow)
		if err != nil {
			return err
		}
		b.Rail = LineRail{Line: l}
	case DriverGPIOCdev:
		l, err := OpenCdevLine(cfg.Chip, cfg.Line, cfg.ActiveLow)
		if err != nil {
			return err
		}
		b.Rail = LineRail{Line: l}
		b.closers = append(b.closers, l)
	case DriverPMIC:
		r, err := OpenPMICRail(cfg.Bus, cfg.Addr, cfg.Reg, cfg.Mask)
		if err != nil {
			return err
		}
		b.Rail = r
		b.closers = append(b.closers, r)
	default:
		return fmt.Errorf("hw: unknown power driver %q", cfg.Driver)
	}
	return nil
}

func (b *Bindings) openChannel(cfg ChannelConfig) error {
	switch cfg.Driver {
	case DriverSPI:
		c, err := OpenSPIChannel(cfg.Port, cfg.DCPin, physic.Frequency(cfg.MaxHz)*physic.Hertz)
		if err != nil {
			return err
		}
		b.Channel = c
		b.closers = append(b.closers, c)
	case DriverSerial:
		c, err := OpenSerialChannel(cfg.Device, cfg.Baud)
		if err != nil {
			return err
		}
		b.Channel = c
		b.closers = append(b.closers, c)
	case "", DriverDryRun:
		b.Channel = DryRunChannel{}
	default:
		return fmt.Errorf("hw: unknown channel driver %q", cfg.Driver)
	}
	return nil
}

// Close releases every handle Open acquired, in reverse order.
func (b *Bindings) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// DryRunChannel logs each command and reports success. It lets the host run
// the full lifecycle on a machine without a panel.
type DryRunChannel struct{}

func (DryRunChannel) Send(cmd dsi.Command) error {
	appLog.Debug("hw: dry-run send", "cmd", cmd.String())
	return nil
}

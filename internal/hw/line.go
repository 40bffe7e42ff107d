package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// outPin is the part of gpio.PinOut the line drivers use.
type outPin interface {
	Out(l gpio.Level) error
}

// PeriphLine is a GPIO output resolved through periph's gpioreg.
// Active means High unless the line is active-low.
type PeriphLine struct {
	name      string
	pin       outPin
	activeLow bool
}

// OpenPeriphLine resolves name (e.g. "GPIO23") and drives it inactive.
func OpenPeriphLine(name string, activeLow bool) (*PeriphLine, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hw: gpio %s not found", name)
	}
	l := &PeriphLine{name: name, pin: p, activeLow: activeLow}
	if err := l.SetActive(false); err != nil {
		return nil, err
	}
	return l, nil
}

// SetActive drives the line to its active or inactive level.
func (l *PeriphLine) SetActive(active bool) error {
	level := gpio.Level(active != l.activeLow)
	if err := l.pin.Out(level); err != nil {
		return fmt.Errorf("hw: gpio %s out %s: %w", l.name, level, err)
	}
	return nil
}

// activeSetter is a two-state output: a GPIO line of either driver.
type activeSetter interface {
	SetActive(active bool) error
}

// LineRail is a supply switched by a GPIO line, e.g. a load switch enable.
type LineRail struct {
	Line activeSetter
}

func (r LineRail) Enable() error  { return r.Line.SetActive(true) }
func (r LineRail) Disable() error { return r.Line.SetActive(false) }

// NopRail is for boards where the panel supply is always on.
type NopRail struct{}

func (NopRail) Enable() error  { return nil }
func (NopRail) Disable() error { return nil }

// Package power sequences the panel supply rail and reset line.
//
// It knows nothing about registers: PowerOn brings the controller chip out
// of reset with the settling times the NV3051D needs, PowerOff puts it back.
package power

import (
	"errors"
	"fmt"
	"time"
)

// Minimum hold times. Callers may wait longer, never shorter.
const (
	// SettleDelay follows rail enable; the controller wants 2-3ms.
	SettleDelay = 3 * time.Millisecond
	// ResetHold is how long reset stays asserted.
	ResetHold = 150 * time.Millisecond
	// ResetRecovery follows reset release before the first command.
	ResetRecovery = 20 * time.Millisecond
)

// Rail is a switchable supply.
type Rail interface {
	Enable() error
	Disable() error
}

// ResetLine drives the panel reset input. SetActive(true) holds the
// controller in reset; polarity is the line's concern.
type ResetLine interface {
	SetActive(active bool) error
}

// PowerError reports a failed rail or reset operation.
type PowerError struct {
	Op  string
	Err error
}

func (e *PowerError) Error() string {
	return fmt.Sprintf("power: %s: %v", e.Op, e.Err)
}

func (e *PowerError) Unwrap() error {
	return e.Err
}

// Controller owns one rail and an optional reset line.
type Controller struct {
	rail    Rail
	reset   ResetLine
	sleep   func(time.Duration)
	enabled bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSleep replaces time.Sleep, e.g. to record delays in tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// New returns a Controller for rail and reset. reset may be nil for boards
// that do not wire the reset input.
func New(rail Rail, reset ResetLine, opts ...Option) (*Controller, error) {
	if rail == nil {
		return nil, errors.New("power: nil rail")
	}
	c := &Controller{
		rail:  rail,
		reset: reset,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Enabled reports whether the rail is currently switched on by this
// controller.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// PowerOn enables the rail and pulses reset:
//
//	rail on, >=2ms, reset on, >=150ms, reset off, >=20ms
//
// If the rail cannot be enabled nothing else is touched. If the reset line
// fails afterwards the rail is switched off again before returning. A rail
// still on from a failed PowerOff is not enabled a second time.
func (c *Controller) PowerOn() error {
	if !c.enabled {
		if err := c.rail.Enable(); err != nil {
			return &PowerError{Op: "enable rail", Err: err}
		}
		c.enabled = true
	}
	c.sleep(SettleDelay)

	if err := c.setReset(true); err != nil {
		return c.abortPowerOn("assert reset", err)
	}
	c.sleep(ResetHold)

	if err := c.setReset(false); err != nil {
		return c.abortPowerOn("release reset", err)
	}
	c.sleep(ResetRecovery)
	return nil
}

func (c *Controller) abortPowerOn(op string, err error) error {
	perr := &PowerError{Op: op, Err: err}
	if derr := c.rail.Disable(); derr != nil {
		return errors.Join(perr, &PowerError{Op: "disable rail", Err: derr})
	}
	c.enabled = false
	return perr
}

// PowerOff asserts reset and disables the rail. It does not wait. Calling it
// with the rail already off only re-asserts reset, so a second call never
// unbalances a reference-counted supply.
func (c *Controller) PowerOff() error {
	var errs []error
	if err := c.setReset(true); err != nil {
		errs = append(errs, &PowerError{Op: "assert reset", Err: err})
	}
	if c.enabled {
		if err := c.rail.Disable(); err != nil {
			errs = append(errs, &PowerError{Op: "disable rail", Err: err})
		} else {
			c.enabled = false
		}
	}
	return errors.Join(errs...)
}

func (c *Controller) setReset(active bool) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.SetActive(active)
}

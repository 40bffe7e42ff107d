// Package panel drives an NV3051D panel through its lifecycle:
//
//	Off -> Powering -> Initializing -> SleepingOut -> On -> SleepingIn -> Off
//
// A Controller combines a power sequencer, the variant's init sequence and
// the standard DCS sleep/display commands. It assumes at most one call in
// flight; hosts with several callers wrap it in a Guard.
package panel

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"dsipanel/internal/dsi"
	appLog "dsipanel/internal/log"
	"dsipanel/internal/variant"
)

// Lifecycle delays. All are minimums.
const (
	// WakeDelay is the controller's internal wake latency after sleep-out.
	WakeDelay = 200 * time.Millisecond
	// DisplayOnSettle follows display-on before prepare reports success.
	DisplayOnSettle = 10 * time.Millisecond
	// DisplayOffHold separates display-off from enter-sleep.
	DisplayOffHold = 20 * time.Millisecond
	// SleepInSettle follows enter-sleep before power is removed (10-15ms).
	SleepInSettle = 10 * time.Millisecond
)

// Power is the supply/reset sequencer a Controller drives. power.Controller
// implements it.
type Power interface {
	PowerOn() error
	PowerOff() error
}

// Controller is the lifecycle state machine for one physical panel.
type Controller struct {
	id    string
	cfg   *variant.Config
	ch    dsi.Channel
	power Power
	sleep func(time.Duration)
	state State

	onTransition func(from, to State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSleep replaces time.Sleep for the lifecycle delays.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// WithID sets the instance id used in logs and status. A random UUID is used
// otherwise.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// WithTransitionHook registers fn to run on every state change, including
// the intermediate states of Prepare and Unprepare.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// New binds a controller to a variant, a command channel and a power
// sequencer. The channel and power handles are owned by the controller from
// here on; cfg is shared and never modified.
func New(cfg *variant.Config, ch dsi.Channel, pwr Power, opts ...Option) (*Controller, error) {
	if cfg == nil {
		return nil, errors.New("panel: nil variant")
	}
	if ch == nil {
		return nil, errors.New("panel: nil command channel")
	}
	if pwr == nil {
		return nil, errors.New("panel: nil power sequencer")
	}
	c := &Controller{
		id:    uuid.NewString(),
		cfg:   cfg,
		ch:    ch,
		power: pwr,
		sleep: time.Sleep,
		state: Off,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) ID() string                 { return c.id }
func (c *Controller) State() State               { return c.state }
func (c *Controller) Variant() *variant.Config   { return c.cfg }
func (c *Controller) BusFlags() variant.BusFlags { return c.cfg.BusFlags }
func (c *Controller) DSI() variant.DSISettings   { return c.cfg.DSI }

// Geometry returns the active area in millimetres.
func (c *Controller) Geometry() (widthMM, heightMM int) {
	return c.cfg.WidthMM, c.cfg.HeightMM
}

// Timings returns the supported timings; a lone timing is preferred.
func (c *Controller) Timings() []variant.Mode {
	return c.cfg.Modes()
}

// Prepare powers the panel and brings it to On. It is only valid from Off.
// Any failure after the rail came up removes power again and leaves the
// controller in Off.
func (c *Controller) Prepare() error {
	if c.state != Off {
		return &StateError{Op: "prepare", State: c.state}
	}

	appLog.Debug("panel: resetting", "id", c.id, "variant", c.cfg.ID)
	c.setState(Powering)
	if err := c.power.PowerOn(); err != nil {
		c.setState(Off)
		appLog.Error("panel: failed to enable power", err, "id", c.id)
		return err
	}

	c.setState(Initializing)
	if err := dsi.Replay(c.ch, c.cfg.Init); err != nil {
		ierr := &InitSequenceError{Err: err}
		var re *dsi.ReplayError
		if errors.As(err, &re) {
			ierr.Position, ierr.Command, ierr.Err = re.Index, re.Command, re.Err
		}
		appLog.Error("panel: init sequence failed", err, "id", c.id, "position", ierr.Position)
		return c.abortPrepare(ierr)
	}
	appLog.Debug("panel: init sequence done", "id", c.id, "commands", len(c.cfg.Init))

	c.setState(SleepingOut)
	if err := c.ch.Send(dsi.Bare(dsi.ExitSleepMode)); err != nil {
		appLog.Error("panel: failed to exit sleep mode", err, "id", c.id)
		return c.abortPrepare(&ProtocolError{State: SleepingOut, Step: "exit sleep", Err: err})
	}
	c.sleep(WakeDelay)

	if err := c.ch.Send(dsi.Bare(dsi.SetDisplayOn)); err != nil {
		appLog.Error("panel: failed to set display on", err, "id", c.id)
		return c.abortPrepare(&ProtocolError{State: SleepingOut, Step: "display on", Err: err})
	}
	c.sleep(DisplayOnSettle)

	c.setState(On)
	return nil
}

func (c *Controller) abortPrepare(cause error) error {
	perr := c.power.PowerOff()
	c.setState(Off)
	if perr != nil {
		appLog.Error("panel: power off after failed prepare", perr, "id", c.id)
		return errors.Join(cause, perr)
	}
	return cause
}

// Unprepare blanks the panel, puts the controller to sleep and removes
// power. From Off it is a no-op.
//
// A failed display-off is logged and ignored. A failed enter-sleep aborts
// with power still applied and the controller left in SleepingIn, as does a
// failed power-off; calling Unprepare again from SleepingIn repeats the
// whole sequence.
func (c *Controller) Unprepare() error {
	switch c.state {
	case Off:
		return nil
	case On, SleepingIn:
	default:
		return &StateError{Op: "unprepare", State: c.state}
	}

	c.setState(SleepingIn)
	if err := c.ch.Send(dsi.Bare(dsi.SetDisplayOff)); err != nil {
		appLog.Error("panel: failed to set display off", err, "id", c.id)
	}
	c.sleep(DisplayOffHold)

	if err := c.ch.Send(dsi.Bare(dsi.EnterSleepMode)); err != nil {
		appLog.Error("panel: failed to enter sleep mode", err, "id", c.id)
		return &ProtocolError{State: SleepingIn, Step: "enter sleep", Err: err}
	}
	c.sleep(SleepInSettle)

	if err := c.power.PowerOff(); err != nil {
		appLog.Error("panel: failed to power off", err, "id", c.id)
		return err
	}
	c.setState(Off)
	return nil
}

// Teardown is the forced path for device removal: Unprepare, then remove
// power regardless of how Unprepare went. Errors are logged only. The
// controller always ends in Off.
func (c *Controller) Teardown() {
	if err := c.Unprepare(); err != nil {
		appLog.Error("panel: unprepare during teardown", err, "id", c.id, "state", c.state.String())
	}
	if err := c.power.PowerOff(); err != nil {
		appLog.Error("panel: power off during teardown", err, "id", c.id)
	}
	c.setState(Off)
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	appLog.Debug("panel: state", "id", c.id, "from", c.state.String(), "to", s.String())
	from := c.state
	c.state = s
	if c.onTransition != nil {
		c.onTransition(from, s)
	}
}

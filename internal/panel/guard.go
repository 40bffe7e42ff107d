package panel

import (
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"

	"dsipanel/internal/model"
	"dsipanel/internal/variant"
)

// Guard serializes lifecycle calls on a Controller for hosts with several
// callers (HTTP handlers, the blanking schedule, signal handling) and keeps
// a status snapshot that can be read while a call is in flight.
type Guard struct {
	op sync.Mutex // held for the duration of Prepare/Unprepare/Teardown
	c  *Controller

	mu        sync.RWMutex
	state     State
	busy      bool
	lastErr   error
	updatedAt time.Time
	observers []func(model.Status)
}

// NewGuard wraps c. c must not be called directly once wrapped.
func NewGuard(c *Controller) *Guard {
	return &Guard{c: c, state: c.State(), updatedAt: time.Now()}
}

// Observe registers fn to receive the status after every lifecycle call.
// fn runs synchronously on the calling goroutine.
func (g *Guard) Observe(fn func(model.Status)) {
	g.mu.Lock()
	g.observers = append(g.observers, fn)
	g.mu.Unlock()
}

func (g *Guard) Prepare() error {
	return g.run(g.c.Prepare)
}

func (g *Guard) Unprepare() error {
	return g.run(g.c.Unprepare)
}

// Teardown runs the forced teardown. It never fails.
func (g *Guard) Teardown() {
	_ = g.run(func() error {
		g.c.Teardown()
		return nil
	})
}

func (g *Guard) run(fn func() error) error {
	g.op.Lock()
	defer g.op.Unlock()

	g.mu.Lock()
	g.busy = true
	g.mu.Unlock()

	err := fn()

	g.mu.Lock()
	g.busy = false
	g.state = g.c.State()
	g.lastErr = err
	g.updatedAt = time.Now()
	observers := append([]func(model.Status){}, g.observers...)
	g.mu.Unlock()

	st := g.Status()
	for _, obs := range observers {
		obs(st)
	}
	return err
}

// Status returns the current snapshot without waiting for an in-flight
// call.
func (g *Guard) Status() model.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := statusOf(g.c)
	st.State = g.state.String()
	st.Busy = g.busy
	if g.lastErr != nil {
		st.LastError = g.lastErr.Error()
	}
	st.UpdatedAt = g.updatedAt
	return st
}

func statusOf(c *Controller) model.Status {
	return model.Status{ID: c.ID(), Panel: Describe(c.Variant())}
}

// Describe converts a variant into its advertised description.
func Describe(cfg *variant.Config) model.Panel {
	p := model.Panel{
		Variant:  cfg.ID,
		WidthMM:  cfg.WidthMM,
		HeightMM: cfg.HeightMM,
		BPC:      cfg.BPC,
		BusFlags: cfg.BusFlags.Names(),
		DSI: model.DSI{
			Lanes:     cfg.DSI.Lanes,
			Format:    string(cfg.DSI.Format),
			ModeFlags: cfg.DSI.ModeFlags.Names(),
		},
		InitCommands: len(cfg.Init),
	}
	for _, m := range cfg.Modes() {
		p.Modes = append(p.Modes, model.Mode{
			Name:      m.Name(),
			RefreshHz: m.RefreshHz(),
			ClockKHz:  int64(m.Clock / physic.KiloHertz),
			HDisplay:  m.HDisplay,
			HTotal:    m.HTotal,
			VDisplay:  m.VDisplay,
			VTotal:    m.VTotal,
			Sync:      m.Flags.Names(),
			Preferred: m.Preferred,
		})
	}
	return p
}

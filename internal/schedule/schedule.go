// Package schedule blanks and restores the panel on cron specs.
package schedule

import (
	"fmt"

	"github.com/robfig/cron/v3"

	appLog "dsipanel/internal/log"
)

// Target is what the schedule drives. panel.Guard implements it.
type Target interface {
	Prepare() error
	Unprepare() error
}

// Blanker runs Unprepare on the off spec and Prepare on the on spec.
// Failed runs are logged; the next tick tries again.
type Blanker struct {
	c *cron.Cron
}

// New parses the specs (standard 5-field cron; either may be empty) and
// registers the jobs. The schedule is not running until Start.
func New(target Target, offSpec, onSpec string) (*Blanker, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if offSpec != "" {
		if _, err := c.AddFunc(offSpec, job("off", target.Unprepare)); err != nil {
			return nil, fmt.Errorf("schedule: off spec %q: %w", offSpec, err)
		}
	}
	if onSpec != "" {
		if _, err := c.AddFunc(onSpec, job("on", target.Prepare)); err != nil {
			return nil, fmt.Errorf("schedule: on spec %q: %w", onSpec, err)
		}
	}
	return &Blanker{c: c}, nil
}

func job(name string, fn func() error) func() {
	return func() {
		appLog.Info("schedule: running", "job", name)
		if err := fn(); err != nil {
			appLog.Error("schedule: job failed", err, "job", name)
		}
	}
}

// Entries returns the registered jobs.
func (b *Blanker) Entries() []cron.Entry {
	return b.c.Entries()
}

// Start runs the schedule in its own goroutine.
func (b *Blanker) Start() {
	if len(b.c.Entries()) == 0 {
		return
	}
	b.c.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (b *Blanker) Stop() {
	<-b.c.Stop().Done()
}

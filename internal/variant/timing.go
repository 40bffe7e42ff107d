package variant

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// TimingSet is one fixed display timing a panel supports.
type TimingSet struct {
	HDisplay   int
	HSyncStart int
	HSyncEnd   int
	HTotal     int

	VDisplay   int
	VSyncStart int
	VSyncEnd   int
	VTotal     int

	// Clock is the pixel clock.
	Clock physic.Frequency
	Flags SyncFlags
}

// Name returns the conventional "WxH" mode name.
func (t TimingSet) Name() string {
	return fmt.Sprintf("%dx%d", t.HDisplay, t.VDisplay)
}

// RefreshHz returns the vertical refresh rate rounded to the closest Hz.
func (t TimingSet) RefreshHz() int {
	frame := int64(t.HTotal) * int64(t.VTotal)
	if frame == 0 {
		return 0
	}
	hz := int64(t.Clock / physic.Hertz)
	return int((hz + frame/2) / frame)
}

// Validate checks display <= sync_start < sync_end < total on both axes and
// a non-zero pixel clock.
func (t TimingSet) Validate() error {
	if err := validateAxis("horizontal", t.HDisplay, t.HSyncStart, t.HSyncEnd, t.HTotal); err != nil {
		return err
	}
	if err := validateAxis("vertical", t.VDisplay, t.VSyncStart, t.VSyncEnd, t.VTotal); err != nil {
		return err
	}
	if t.Clock <= 0 {
		return fmt.Errorf("variant: timing %s: pixel clock must be positive", t.Name())
	}
	return nil
}

func validateAxis(axis string, display, syncStart, syncEnd, total int) error {
	if display <= 0 {
		return fmt.Errorf("variant: %s display size %d must be positive", axis, display)
	}
	if !(display <= syncStart && syncStart < syncEnd && syncEnd < total) {
		return fmt.Errorf("variant: %s timing out of order: display=%d sync_start=%d sync_end=%d total=%d",
			axis, display, syncStart, syncEnd, total)
	}
	return nil
}

// Mode is a TimingSet as advertised to a display consumer.
type Mode struct {
	TimingSet
	// Preferred is set only when the variant declares exactly one timing.
	Preferred bool
}

// Modes marks the single timing of a one-entry list as preferred and leaves
// every entry of a longer list unpreferred.
func Modes(timings []TimingSet) []Mode {
	out := make([]Mode, len(timings))
	for i, t := range timings {
		out[i] = Mode{TimingSet: t, Preferred: len(timings) == 1}
	}
	return out
}

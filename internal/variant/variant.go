// Package variant holds the static catalog of NV3051D panel variants: their
// geometry, timings, bus and link flags, and vendor init sequences.
//
// Variants differ only in data. All register knowledge lives here; the
// lifecycle in internal/panel never inspects it beyond handing Init to
// dsi.Replay.
package variant

import (
	"errors"
	"fmt"

	"dsipanel/internal/dsi"
)

// PixelFormat is the DSI pixel stream format.
type PixelFormat string

const FormatRGB888 PixelFormat = "rgb888"

// DSISettings are the link parameters a variant needs from the DSI host.
type DSISettings struct {
	Lanes     int
	Format    PixelFormat
	ModeFlags ModeFlags
}

// Config describes one hardware variant. Values in the catalog are never
// modified after package initialization.
type Config struct {
	// ID is the hardware identifier the platform reports for the panel,
	// e.g. "anbernic,rg353p-panel".
	ID string

	WidthMM  int
	HeightMM int
	// BPC is bits per color component.
	BPC int

	BusFlags BusFlags
	DSI      DSISettings

	Timings []TimingSet
	Init    dsi.Sequence
}

// Modes returns the variant's timings with the preferred flag applied.
func (c *Config) Modes() []Mode {
	return Modes(c.Timings)
}

// Validate checks the invariants every catalog entry must hold.
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.New("variant: empty id")
	}
	if len(c.Timings) == 0 {
		return fmt.Errorf("variant %s: no timings", c.ID)
	}
	for i, t := range c.Timings {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("variant %s: timing %d: %w", c.ID, i, err)
		}
	}
	if c.WidthMM <= 0 || c.HeightMM <= 0 {
		return fmt.Errorf("variant %s: physical size %dx%dmm must be positive", c.ID, c.WidthMM, c.HeightMM)
	}
	if c.DSI.Lanes < 1 || c.DSI.Lanes > 4 {
		return fmt.Errorf("variant %s: %d DSI lanes out of range", c.ID, c.DSI.Lanes)
	}
	return nil
}

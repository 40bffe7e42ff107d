package model

import "time"

// Panel describes what a variant advertises to the display host. It does
// not change over the life of a controller.
type Panel struct {
	Variant string `json:"variant"`

	WidthMM  int `json:"width_mm"`
	HeightMM int `json:"height_mm"`
	BPC      int `json:"bpc"`

	BusFlags []string `json:"bus_flags"`
	DSI      DSI      `json:"dsi"`
	Modes    []Mode   `json:"modes"`

	// InitCommands is the length of the vendor init sequence.
	InitCommands int `json:"init_commands"`
}

// Status is a point-in-time view of one panel, shared by the HTTP API and
// the MQTT publisher.
type Status struct {
	// ID identifies this controller instance for the life of the process.
	ID string `json:"id"`
	Panel

	// State is the lifecycle state name ("Off", "On", "SleepingIn", ...).
	State string `json:"state"`
	// Busy is set while a prepare/unprepare call is in flight; State then
	// still shows the state before the call.
	Busy bool `json:"busy"`

	// LastError is the error returned by the most recent lifecycle call, if
	// it failed.
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DSI mirrors the link settings a variant requests.
type DSI struct {
	Lanes     int      `json:"lanes"`
	Format    string   `json:"format"`
	ModeFlags []string `json:"mode_flags"`
}

// Mode is one advertised timing.
type Mode struct {
	Name      string   `json:"name"`
	RefreshHz int      `json:"refresh_hz"`
	ClockKHz  int64    `json:"clock_khz"`
	HDisplay  int      `json:"hdisplay"`
	HTotal    int      `json:"htotal"`
	VDisplay  int      `json:"vdisplay"`
	VTotal    int      `json:"vtotal"`
	Sync      []string `json:"sync"`
	Preferred bool     `json:"preferred"`
}

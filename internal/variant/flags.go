package variant

import "strings"

// BusFlags describes pixel bus signalling between the DSI bridge and the
// panel.
type BusFlags uint32

const (
	BusDEHigh BusFlags = 1 << iota
	BusDELow
	BusPixDataDrivePosEdge
	BusPixDataDriveNegEdge
)

var busFlagNames = []flagName[BusFlags]{
	{BusDEHigh, "de-high"},
	{BusDELow, "de-low"},
	{BusPixDataDrivePosEdge, "pixdata-drive-posedge"},
	{BusPixDataDriveNegEdge, "pixdata-drive-negedge"},
}

// Has reports whether all bits of f are set in b.
func (b BusFlags) Has(f BusFlags) bool { return b&f == f }

// Names returns the set flags in declaration order.
func (b BusFlags) Names() []string { return names(b, busFlagNames) }

func (b BusFlags) String() string { return strings.Join(b.Names(), "|") }

// ModeFlags are the DSI link mode flags a variant needs from the host.
type ModeFlags uint32

const (
	ModeVideo ModeFlags = 1 << iota
	ModeVideoBurst
	ModeLPM
	ModeNoEOTPacket
	ModeClockNonContinuous
)

var modeFlagNames = []flagName[ModeFlags]{
	{ModeVideo, "video"},
	{ModeVideoBurst, "video-burst"},
	{ModeLPM, "lpm"},
	{ModeNoEOTPacket, "no-eot-packet"},
	{ModeClockNonContinuous, "clock-non-continuous"},
}

func (m ModeFlags) Has(f ModeFlags) bool { return m&f == f }

func (m ModeFlags) Names() []string { return names(m, modeFlagNames) }

func (m ModeFlags) String() string { return strings.Join(m.Names(), "|") }

// SyncFlags carries sync polarity for a TimingSet.
type SyncFlags uint32

const (
	PHSync SyncFlags = 1 << iota
	NHSync
	PVSync
	NVSync
)

var syncFlagNames = []flagName[SyncFlags]{
	{PHSync, "phsync"},
	{NHSync, "nhsync"},
	{PVSync, "pvsync"},
	{NVSync, "nvsync"},
}

func (s SyncFlags) Has(f SyncFlags) bool { return s&f == f }

func (s SyncFlags) Names() []string { return names(s, syncFlagNames) }

func (s SyncFlags) String() string { return strings.Join(s.Names(), "|") }

type flagName[T ~uint32] struct {
	flag T
	name string
}

func names[T ~uint32](v T, table []flagName[T]) []string {
	out := make([]string, 0, len(table))
	for _, fn := range table {
		if v&fn.flag == fn.flag {
			out = append(out, fn.name)
		}
	}
	return out
}

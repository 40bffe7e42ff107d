package variant

import (
	"sort"

	"periph.io/x/conn/v3/physic"
)

// 120, 100 and 60 Hz modes for the RGxx3 family.
var rgxx3Timings = []TimingSet{
	{
		HDisplay: 640, HSyncStart: 640 + 40, HSyncEnd: 640 + 40 + 2, HTotal: 640 + 40 + 2 + 80,
		VDisplay: 480, VSyncStart: 480 + 18, VSyncEnd: 480 + 18 + 2, VTotal: 480 + 18 + 2 + 28,
		Clock: 48300 * physic.KiloHertz,
		Flags: NHSync | NVSync,
	},
	{
		HDisplay: 640, HSyncStart: 640 + 40, HSyncEnd: 640 + 40 + 2, HTotal: 640 + 40 + 2 + 80,
		VDisplay: 480, VSyncStart: 480 + 18, VSyncEnd: 480 + 18 + 2, VTotal: 480 + 18 + 2 + 28,
		Clock: 40250 * physic.KiloHertz,
		Flags: NHSync | NVSync,
	},
	{
		HDisplay: 640, HSyncStart: 640 + 40, HSyncEnd: 640 + 40 + 2, HTotal: 640 + 40 + 2 + 44,
		VDisplay: 480, VSyncStart: 480 + 18, VSyncEnd: 480 + 18 + 2, VTotal: 480 + 18 + 2 + 28,
		Clock: 24150 * physic.KiloHertz,
		Flags: NHSync | NVSync,
	},
}

var rk2023Timings = []TimingSet{
	{
		HDisplay: 640, HSyncStart: 640 + 40, HSyncEnd: 640 + 40 + 2, HTotal: 640 + 40 + 2 + 80,
		VDisplay: 480, VSyncStart: 480 + 18, VSyncEnd: 480 + 18 + 2, VTotal: 480 + 18 + 2 + 4,
		Clock: 24150 * physic.KiloHertz,
		Flags: NHSync | NVSync,
	},
}

const (
	commonBusFlags  = BusDELow | BusPixDataDriveNegEdge
	commonModeFlags = ModeVideo | ModeVideoBurst | ModeLPM | ModeNoEOTPacket
)

func dsiSettings(flags ModeFlags) DSISettings {
	return DSISettings{Lanes: 4, Format: FormatRGB888, ModeFlags: flags}
}

var catalog = map[string]*Config{
	"gameconsole,r36s-panel": {
		ID:       "gameconsole,r36s-panel",
		WidthMM:  70,
		HeightMM: 52,
		BPC:      8,
		BusFlags: commonBusFlags,
		DSI:      dsiSettings(commonModeFlags),
		Timings:  rk2023Timings,
		Init:     r36sInit,
	},
	"anbernic,rg351v-panel": {
		ID:       "anbernic,rg351v-panel",
		WidthMM:  70,
		HeightMM: 57,
		BPC:      8,
		BusFlags: commonBusFlags,
		DSI:      dsiSettings(commonModeFlags | ModeClockNonContinuous),
		Timings:  rgxx3Timings,
		Init:     nv3051dInit,
	},
	"anbernic,rg353p-panel": {
		ID:       "anbernic,rg353p-panel",
		WidthMM:  70,
		HeightMM: 57,
		BPC:      8,
		BusFlags: commonBusFlags,
		DSI:      dsiSettings(commonModeFlags),
		Timings:  rgxx3Timings,
		Init:     nv3051dInit,
	},
	"powkiddy,rk2023-panel": {
		ID:       "powkiddy,rk2023-panel",
		WidthMM:  70,
		HeightMM: 57,
		BPC:      8,
		BusFlags: commonBusFlags,
		DSI:      dsiSettings(commonModeFlags),
		Timings:  rk2023Timings,
		Init:     nv3051dInit,
	},
}

// Lookup returns the variant registered for a hardware identifier. An
// unknown identifier yields false; callers cannot drive a panel without a
// variant and should treat that as a fatal configuration error.
//
// The returned Config is shared and must not be modified.
func Lookup(id string) (*Config, bool) {
	c, ok := catalog[id]
	return c, ok
}

// IDs returns every registered identifier, sorted.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

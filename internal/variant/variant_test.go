package variant

import (
	"testing"

	"dsipanel/internal/dsi"
)

func TestCatalog_AllVariantsValid(t *testing.T) {
	for _, id := range IDs() {
		c, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) failed for a listed id", id)
		}
		if c.ID != id {
			t.Errorf("catalog key %q holds variant %q", id, c.ID)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %v", id, err)
		}
		if len(c.Init) == 0 {
			t.Errorf("%s: empty init sequence", id)
		}
	}
}

func TestCatalog_TimingOrder(t *testing.T) {
	for _, id := range IDs() {
		c, _ := Lookup(id)
		for i, ts := range c.Timings {
			if !(ts.HSyncStart < ts.HSyncEnd && ts.HSyncEnd < ts.HTotal) {
				t.Errorf("%s timing %d: horizontal %d < %d < %d violated", id, i, ts.HSyncStart, ts.HSyncEnd, ts.HTotal)
			}
			if !(ts.VSyncStart < ts.VSyncEnd && ts.VSyncEnd < ts.VTotal) {
				t.Errorf("%s timing %d: vertical %d < %d < %d violated", id, i, ts.VSyncStart, ts.VSyncEnd, ts.VTotal)
			}
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if c, ok := Lookup("acme,unknown-panel"); ok || c != nil {
		t.Errorf("Lookup(unknown) = %v, %v; want nil, false", c, ok)
	}
	if _, ok := Lookup(""); ok {
		t.Error("Lookup(\"\") should fail")
	}
}

func TestIDs_Sorted(t *testing.T) {
	want := []string{
		"anbernic,rg351v-panel",
		"anbernic,rg353p-panel",
		"gameconsole,r36s-panel",
		"powkiddy,rk2023-panel",
	}
	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestModes_PreferredOnlyWhenSingle(t *testing.T) {
	single, _ := Lookup("powkiddy,rk2023-panel")
	modes := single.Modes()
	if len(modes) != 1 || !modes[0].Preferred {
		t.Errorf("single-timing variant modes = %+v, want one preferred mode", modes)
	}

	triple, _ := Lookup("anbernic,rg353p-panel")
	modes = triple.Modes()
	if len(modes) != 3 {
		t.Fatalf("rg353p has %d modes, want 3", len(modes))
	}
	for i, m := range modes {
		if m.Preferred {
			t.Errorf("mode %d of a three-timing variant marked preferred", i)
		}
	}
}

func TestTimingSet_RefreshAndName(t *testing.T) {
	tests := []struct {
		ts   TimingSet
		want int
	}{
		{rgxx3Timings[0], 120},
		{rgxx3Timings[1], 100},
		{rk2023Timings[0], 63},
	}
	for _, tt := range tests {
		if got := tt.ts.RefreshHz(); got != tt.want {
			t.Errorf("RefreshHz(%v) = %d, want %d", tt.ts.Clock, got, tt.want)
		}
		if tt.ts.Name() != "640x480" {
			t.Errorf("Name() = %q", tt.ts.Name())
		}
	}
	if (TimingSet{}).RefreshHz() != 0 {
		t.Error("zero timing should report 0 Hz")
	}
}

func TestTimingSet_ValidateRejectsBadOrder(t *testing.T) {
	bad := rk2023Timings[0]
	bad.HSyncEnd = bad.HTotal
	if err := bad.Validate(); err == nil {
		t.Error("sync_end == total should be rejected")
	}

	bad = rk2023Timings[0]
	bad.VSyncStart = bad.VSyncEnd
	if err := bad.Validate(); err == nil {
		t.Error("sync_start == sync_end should be rejected")
	}

	bad = rk2023Timings[0]
	bad.Clock = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero pixel clock should be rejected")
	}
}

func TestConfig_ValidateRequiresTimings(t *testing.T) {
	c := &Config{ID: "x", WidthMM: 1, HeightMM: 1, DSI: DSISettings{Lanes: 4}}
	if err := c.Validate(); err == nil {
		t.Error("variant without timings should be rejected")
	}
}

func TestSequences_StartWithPageSelect(t *testing.T) {
	for name, seq := range map[string]dsi.Sequence{"nv3051d": nv3051dInit, "r36s": r36sInit} {
		want := dsi.Sequence{dsi.Write(0xFF, 0x30), dsi.Write(0xFF, 0x52), dsi.Write(0xFF, 0x01)}
		for i := range want {
			if seq[i] != want[i] {
				t.Errorf("%s[%d] = %s, want %s", name, i, seq[i], want[i])
			}
		}
	}
	last := r36sInit[len(r36sInit)-2:]
	if last[0] != dsi.Bare(dsi.ExitSleepMode) || last[1] != dsi.Bare(dsi.SetDisplayOn) {
		t.Errorf("r36s sequence tail = %v", last)
	}
}

func TestFlags_Names(t *testing.T) {
	c, _ := Lookup("anbernic,rg351v-panel")
	if got := c.BusFlags.String(); got != "de-low|pixdata-drive-negedge" {
		t.Errorf("BusFlags = %q", got)
	}
	if !c.DSI.ModeFlags.Has(ModeClockNonContinuous) {
		t.Error("rg351v should request a non-continuous clock")
	}
	other, _ := Lookup("anbernic,rg353p-panel")
	if other.DSI.ModeFlags.Has(ModeClockNonContinuous) {
		t.Error("rg353p should not request a non-continuous clock")
	}
	if got := (NHSync | NVSync).String(); got != "nhsync|nvsync" {
		t.Errorf("SyncFlags = %q", got)
	}
}

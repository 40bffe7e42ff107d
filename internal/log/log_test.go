package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(LevelWarn)
	defer SetLevel(LevelInfo)

	Info("hidden")
	Debug("hidden too")
	Warn("shown", "state", "SleepingIn")
	Error("failed", errors.New("bus nack"), "step", "enter sleep")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("lines below WARN were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown state=SleepingIn") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, `[ERROR] failed err="bus nack" step="enter sleep"`) {
		t.Errorf("missing error line: %q", out)
	}
}

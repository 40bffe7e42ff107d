package dsi

import (
	"errors"
	"testing"
)

type recordingChannel struct {
	sent   []Command
	failAt int // index of the Send call that fails; -1 never fails
	err    error
}

func (r *recordingChannel) Send(cmd Command) error {
	if r.failAt >= 0 && len(r.sent) == r.failAt {
		r.sent = append(r.sent, cmd)
		return r.err
	}
	r.sent = append(r.sent, cmd)
	return nil
}

func TestReplay_SendsInOrder(t *testing.T) {
	seq := Sequence{Write(0xFF, 0x30), Write(0xFF, 0x52), Write(0xFF, 0x01), Bare(0x11)}
	ch := &recordingChannel{failAt: -1}

	if err := Replay(ch, seq); err != nil {
		t.Fatalf("Replay returned %v", err)
	}
	if len(ch.sent) != len(seq) {
		t.Fatalf("sent %d commands, want %d", len(ch.sent), len(seq))
	}
	for i := range seq {
		if ch.sent[i] != seq[i] {
			t.Errorf("command %d = %s, want %s", i, ch.sent[i], seq[i])
		}
	}
}

func TestReplay_StopsAtFirstFailure(t *testing.T) {
	seq := Sequence{Write(0xFF, 0x30), Write(0xFF, 0x52), Write(0xFF, 0x01)}
	busErr := errors.New("bus nack")
	ch := &recordingChannel{failAt: 1, err: busErr}

	err := Replay(ch, seq)
	var re *ReplayError
	if !errors.As(err, &re) {
		t.Fatalf("Replay error = %v, want *ReplayError", err)
	}
	if re.Index != 1 {
		t.Errorf("Index = %d, want 1", re.Index)
	}
	if re.Command != Write(0xFF, 0x52) {
		t.Errorf("Command = %s, want Write(0xFF,0x52)", re.Command)
	}
	if !errors.Is(err, busErr) {
		t.Error("ReplayError should unwrap to the channel error")
	}
	if len(ch.sent) != 2 {
		t.Errorf("sent %d commands, want 2 (no retry, nothing after the failure)", len(ch.sent))
	}
}

func TestReplay_EmptySequence(t *testing.T) {
	ch := &recordingChannel{failAt: 0, err: errors.New("unused")}
	if err := Replay(ch, nil); err != nil {
		t.Errorf("Replay(nil) = %v, want nil", err)
	}
	if len(ch.sent) != 0 {
		t.Errorf("sent %d commands for an empty sequence", len(ch.sent))
	}
}

func TestCommand_Bytes(t *testing.T) {
	if got := Write(0xE3, 0x00).Bytes(); len(got) != 2 || got[0] != 0xE3 || got[1] != 0x00 {
		t.Errorf("Write bytes = %v", got)
	}
	if got := Bare(ExitSleepMode).Bytes(); len(got) != 1 || got[0] != 0x11 {
		t.Errorf("Bare bytes = %v", got)
	}
}

func TestCommand_String(t *testing.T) {
	if s := Write(0xFF, 0x52).String(); s != "Write(0xFF,0x52)" {
		t.Errorf("String = %q", s)
	}
	if s := Bare(0x29).String(); s != "Bare(0x29)" {
		t.Errorf("String = %q", s)
	}
}

func TestChannelError_Unwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := error(&ChannelError{Op: "spi tx", Command: Bare(0x10), Err: inner})
	if !errors.Is(err, inner) {
		t.Error("ChannelError should unwrap")
	}
}

package dsi

import "fmt"

// ReplayError reports the first command of a sequence that failed.
type ReplayError struct {
	// Index is the zero-based position of Command within the sequence.
	Index   int
	Command Command
	Err     error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("dsi: command %d (%s) failed: %v", e.Index, e.Command, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// Replay sends every command of seq over ch in order and stops at the first
// failure. Commands already sent are not undone and the failing command is
// never retried.
func Replay(ch Channel, seq Sequence) error {
	for i, cmd := range seq {
		if err := ch.Send(cmd); err != nil {
			return &ReplayError{Index: i, Command: cmd, Err: err}
		}
	}
	return nil
}

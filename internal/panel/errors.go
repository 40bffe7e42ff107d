package panel

import (
	"errors"
	"fmt"

	"dsipanel/internal/dsi"
)

// ErrInvalidState is wrapped by StateError.
var ErrInvalidState = errors.New("invalid lifecycle state")

// StateError is returned when an operation is called from a state it does
// not accept.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("panel: %s not allowed in state %s", e.Op, e.State)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// InitSequenceError reports the vendor init command that failed.
type InitSequenceError struct {
	// Position is the zero-based index of Command in the init sequence.
	Position int
	Command  dsi.Command
	Err      error
}

func (e *InitSequenceError) Error() string {
	return fmt.Sprintf("panel: init sequence failed at command %d (%s): %v", e.Position, e.Command, e.Err)
}

func (e *InitSequenceError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a failed standard lifecycle command.
type ProtocolError struct {
	// State is the state the controller was in when the step ran.
	State State
	// Step names the command: "exit sleep", "display on", "enter sleep".
	Step string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("panel: %s failed in state %s: %v", e.Step, e.State, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

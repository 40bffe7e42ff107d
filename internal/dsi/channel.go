package dsi

import "fmt"

// Channel sends a single command to the panel controller. Each call may
// fail independently; there is no batching.
type Channel interface {
	Send(cmd Command) error
}

// ChannelFunc adapts a plain function to Channel.
type ChannelFunc func(cmd Command) error

// Send implements Channel.
func (f ChannelFunc) Send(cmd Command) error {
	return f(cmd)
}

// ChannelError is returned by transports when a command could not be
// delivered.
type ChannelError struct {
	// Op names the transport step that failed, e.g. "spi tx" or "serial ack".
	Op      string
	Command Command
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("dsi: %s %s: %v", e.Op, e.Command, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// Package dsi models the command side of a MIPI-DSI panel link: single
// register writes and bare DCS commands, ordered sequences of them, and the
// interpreter that replays a sequence over a Channel.
//
// How a command physically reaches the controller is left to the Channel
// implementation (see internal/hw for SPI and serial-bridge transports).
package dsi

import "fmt"

// Standard DCS opcodes used by the panel lifecycle.
const (
	EnterSleepMode byte = 0x10
	ExitSleepMode  byte = 0x11
	SetDisplayOff  byte = 0x28
	SetDisplayOn   byte = 0x29
)

// Kind tells a register write apart from a bare command.
type Kind uint8

const (
	// KindWrite is a register write carrying one value byte.
	KindWrite Kind = iota
	// KindBare is a command byte with no payload.
	KindBare
)

// Command is one unit sent over a Channel.
type Command struct {
	Kind  Kind
	Addr  byte
	Value byte
}

// Write returns a register write of value to addr.
func Write(addr, value byte) Command {
	return Command{Kind: KindWrite, Addr: addr, Value: value}
}

// Bare returns a payload-less command.
func Bare(addr byte) Command {
	return Command{Kind: KindBare, Addr: addr}
}

// Bytes returns the command as it appears on the wire: the address byte,
// followed by the value for writes.
func (c Command) Bytes() []byte {
	if c.Kind == KindBare {
		return []byte{c.Addr}
	}
	return []byte{c.Addr, c.Value}
}

func (c Command) String() string {
	if c.Kind == KindBare {
		return fmt.Sprintf("Bare(0x%02X)", c.Addr)
	}
	return fmt.Sprintf("Write(0x%02X,0x%02X)", c.Addr, c.Value)
}

// Sequence is an ordered list of commands. Order matters: vendor sequences
// select a register page with 0xFF writes and later writes land on that
// page. Sequences are never reordered or deduplicated.
type Sequence []Command

package hw

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"

	"dsipanel/internal/dsi"
)

// Bridge protocol framing. A frame is
//
//	[STX][len][kind][addr][value?][xor][ETX]
//
// where len counts the payload bytes (kind, addr, value) and xor covers len
// and the payload. The bridge answers every frame with ACK or NAK.
const (
	frameSTX byte = 0x02
	frameETX byte = 0x03
	replyACK byte = 0x06
	replyNAK byte = 0x15
)

// ErrNAK is returned when the bridge rejects a frame.
var ErrNAK = errors.New("bridge rejected frame")

// SerialChannel forwards commands to a microcontroller that owns the DSI
// link, over a UART.
type SerialChannel struct {
	rw     io.ReadWriter
	closer io.Closer
}

// OpenSerialChannel opens device at baud (115200 when zero).
func OpenSerialChannel(device string, baud int) (*SerialChannel, error) {
	if baud == 0 {
		baud = 115200
	}
	c := &serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: time.Second,
	}
	port, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("hw: open serial %s: %w", device, err)
	}
	return &SerialChannel{rw: port, closer: port}, nil
}

// NewSerialChannel runs the bridge protocol over an arbitrary stream.
func NewSerialChannel(rw io.ReadWriter) *SerialChannel {
	return &SerialChannel{rw: rw}
}

// flusher discards unread input; *serial.Port implements it.
type flusher interface {
	Flush() error
}

// Send implements dsi.Channel. Unread input is discarded before each frame
// so a late reply to an earlier frame is never taken as this frame's reply.
func (s *SerialChannel) Send(cmd dsi.Command) error {
	if f, ok := s.rw.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &dsi.ChannelError{Op: "serial flush", Command: cmd, Err: err}
		}
	}
	if _, err := s.rw.Write(encodeFrame(cmd)); err != nil {
		return &dsi.ChannelError{Op: "serial write", Command: cmd, Err: err}
	}
	reply := make([]byte, 1)
	n, err := s.rw.Read(reply)
	if err != nil {
		return &dsi.ChannelError{Op: "serial ack", Command: cmd, Err: err}
	}
	if n == 0 {
		return &dsi.ChannelError{Op: "serial ack", Command: cmd, Err: io.ErrNoProgress}
	}
	switch reply[0] {
	case replyACK:
		return nil
	case replyNAK:
		return &dsi.ChannelError{Op: "serial ack", Command: cmd, Err: ErrNAK}
	default:
		return &dsi.ChannelError{Op: "serial ack", Command: cmd, Err: fmt.Errorf("unexpected reply 0x%02x", reply[0])}
	}
}

func encodeFrame(cmd dsi.Command) []byte {
	payload := cmd.Bytes()
	body := make([]byte, 0, len(payload)+2)
	body = append(body, byte(len(payload)+1), byte(cmd.Kind))
	body = append(body, payload...)

	var xor byte
	for _, b := range body {
		xor ^= b
	}
	frame := make([]byte, 0, len(body)+3)
	frame = append(frame, frameSTX)
	frame = append(frame, body...)
	return append(frame, xor, frameETX)
}

// Close closes the serial port.
func (s *SerialChannel) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

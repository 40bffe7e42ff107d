package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"dsipanel/internal/dsi"
)

// DefaultSPIFrequency is used when no max_hz is configured.
const DefaultSPIFrequency = 10 * physic.MegaHertz

// txConn is the part of spi.Conn the channel uses.
type txConn interface {
	Tx(w, r []byte) error
}

// SPIChannel sends commands to a controller strapped for its 4-wire SPI
// interface: DC low for the register byte, DC high for the value byte.
type SPIChannel struct {
	conn   txConn
	dc     outPin
	closer interface{ Close() error }
}

// OpenSPIChannel opens port ("" for the first spidev) in mode 0 and the DC
// pin by name.
func OpenSPIChannel(port, dcPin string, maxHz physic.Frequency) (*SPIChannel, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	if maxHz <= 0 {
		maxHz = DefaultSPIFrequency
	}
	dc := gpioreg.ByName(dcPin)
	if dc == nil {
		return nil, fmt.Errorf("hw: dc gpio %s not found", dcPin)
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("hw: dc gpio %s out: %w", dcPin, err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("hw: failed to open SPI port: %w", err)
	}
	c, err := p.Connect(maxHz, spi.Mode0, 8)
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("hw: failed to connect SPI: %w", err)
	}
	ch := newSPIChannel(c, dc)
	ch.closer = p
	return ch, nil
}

func newSPIChannel(c txConn, dc outPin) *SPIChannel {
	return &SPIChannel{conn: c, dc: dc}
}

// Send implements dsi.Channel.
func (s *SPIChannel) Send(cmd dsi.Command) error {
	if err := s.write(gpio.Low, cmd.Addr); err != nil {
		return &dsi.ChannelError{Op: "spi command", Command: cmd, Err: err}
	}
	if cmd.Kind == dsi.KindBare {
		return nil
	}
	if err := s.write(gpio.High, cmd.Value); err != nil {
		return &dsi.ChannelError{Op: "spi data", Command: cmd, Err: err}
	}
	return nil
}

func (s *SPIChannel) write(dc gpio.Level, b byte) error {
	if err := s.dc.Out(dc); err != nil {
		return err
	}
	return s.conn.Tx([]byte{b}, nil)
}

// Close releases the SPI port.
func (s *SPIChannel) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

//go:build linux

package hw

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// CdevLine is an output line requested from a GPIO character device
// (/dev/gpiochipN). Polarity is handled by the kernel.
type CdevLine struct {
	line *gpiocdev.Line
}

// OpenCdevLine requests offset on chip (e.g. "gpiochip0") as an output,
// initially inactive.
func OpenCdevLine(chip string, offset int, activeLow bool) (*CdevLine, error) {
	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("panelctl"),
	}
	if activeLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}
	l, err := gpiocdev.RequestLine(chip, offset, opts...)
	if err != nil {
		return nil, fmt.Errorf("hw: request %s:%d: %w", chip, offset, err)
	}
	return &CdevLine{line: l}, nil
}

func (c *CdevLine) SetActive(active bool) error {
	v := 0
	if active {
		v = 1
	}
	if err := c.line.SetValue(v); err != nil {
		return fmt.Errorf("hw: set line %d: %w", c.line.Offset(), err)
	}
	return nil
}

// Close releases the line back to the kernel.
func (c *CdevLine) Close() error {
	return c.line.Close()
}

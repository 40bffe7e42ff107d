//go:build !linux

package hw

import "errors"

// CdevLine is only available on linux.
type CdevLine struct{}

func OpenCdevLine(chip string, offset int, activeLow bool) (*CdevLine, error) {
	return nil, errors.New("hw: gpio character devices are only available on linux")
}

func (c *CdevLine) SetActive(active bool) error {
	return errors.New("hw: gpio character devices are only available on linux")
}

func (c *CdevLine) Close() error { return nil }

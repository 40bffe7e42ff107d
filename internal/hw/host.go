// Package hw binds the panel's abstract rail, reset line and command channel
// to real hardware: periph.io GPIO/SPI/I2C, GPIO character devices and a
// serial bridge board.
package hw

import (
	"fmt"
	"sync"

	"periph.io/x/host/v3"
)

var (
	hostOnce sync.Once
	hostErr  error
)

// Init initializes periph.io drivers once per process.
func Init() error {
	hostOnce.Do(func() {
		if _, err := host.Init(); err != nil {
			hostErr = fmt.Errorf("hw: periph host init failed: %w", err)
		}
	})
	return hostErr
}

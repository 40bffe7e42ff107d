package hw

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// PMICRail switches a regulator by setting or clearing Mask in an enable
// register of an I2C power-management chip. Other bits of the register are
// preserved.
type PMICRail struct {
	dev    conn.Conn
	reg    byte
	mask   byte
	closer interface{ Close() error }
}

// OpenPMICRail opens busName ("" for the default bus) and binds the rail to
// reg/mask on the chip at addr.
func OpenPMICRail(busName string, addr uint16, reg, mask byte) (*PMICRail, error) {
	if mask == 0 {
		return nil, fmt.Errorf("hw: pmic rail 0x%02x: empty enable mask", reg)
	}
	if err := Init(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("hw: open i2c bus %q: %w", busName, err)
	}
	r := newPMICRail(&i2c.Dev{Bus: bus, Addr: addr}, reg, mask)
	r.closer = bus
	return r, nil
}

func newPMICRail(dev conn.Conn, reg, mask byte) *PMICRail {
	return &PMICRail{dev: dev, reg: reg, mask: mask}
}

func (r *PMICRail) Enable() error {
	return r.update(func(v byte) byte { return v | r.mask })
}

func (r *PMICRail) Disable() error {
	return r.update(func(v byte) byte { return v &^ r.mask })
}

func (r *PMICRail) update(fn func(byte) byte) error {
	cur, err := r.readReg()
	if err != nil {
		return err
	}
	next := fn(cur)
	if next == cur {
		return nil
	}
	if err := r.dev.Tx([]byte{r.reg, next}, nil); err != nil {
		return fmt.Errorf("hw: pmic write 0x%02x: %w", r.reg, err)
	}
	return nil
}

func (r *PMICRail) readReg() (byte, error) {
	buf := []byte{0}
	if err := r.dev.Tx([]byte{r.reg}, buf); err != nil {
		return 0, fmt.Errorf("hw: pmic read 0x%02x: %w", r.reg, err)
	}
	return buf[0], nil
}

// Close releases the I2C bus.
func (r *PMICRail) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

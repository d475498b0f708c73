// Package adxl343 drives an ADXL343 3-axis accelerometer over I2C.
//
// The device powers up in standby; Init wakes it into continuous
// measurement mode. Samples are read with a single combined
// write-then-read transaction so no other bus master can interleave
// between the register-pointer write and the data burst.
package adxl343

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
)

// Vector3 is one accelerometer sample with each axis normalized to
// units of standard gravity (g).
type Vector3 struct {
	X, Y, Z float32
}

// bootDelay gives the device time to finish its own power-on sequence
// before the first register write.
const bootDelay = 100 * time.Millisecond

// Dev is an open ADXL343 on an I2C bus.
type Dev struct {
	conn *i2c.Dev
}

// New binds the device at addr on bus. No I/O is performed; call Init
// before reading.
func New(bus i2c.Bus, addr uint16) *Dev {
	return &Dev{conn: &i2c.Dev{Bus: bus, Addr: addr}}
}

// Init verifies the device identity and commands it into continuous
// measurement mode. It must succeed before any ReadAccel call.
func (d *Dev) Init() error {
	time.Sleep(bootDelay)

	id, err := d.ReadRegister(RegDevID)
	if err != nil {
		return fmt.Errorf("adxl343: read device id: %w", err)
	}
	if id != DeviceID {
		return fmt.Errorf("adxl343: unexpected device id 0x%02X, want 0x%02X (check wiring and address)", id, DeviceID)
	}

	if err := d.WriteRegister(RegPowerCtl, PowerCtlMeasure); err != nil {
		return fmt.Errorf("adxl343: enable measurement mode: %w", err)
	}
	return nil
}

// ReadAccel reads all three axes in one burst starting at DATAX0.
// Each axis is a little-endian signed 16-bit value at 256 LSB per g.
func (d *Dev) ReadAccel() (Vector3, error) {
	var buf [6]byte
	if err := d.conn.Tx([]byte{RegDataX0}, buf[:]); err != nil {
		return Vector3{}, fmt.Errorf("adxl343: read data registers: %w", err)
	}

	x := int16(uint16(buf[1])<<8 | uint16(buf[0]))
	y := int16(uint16(buf[3])<<8 | uint16(buf[2]))
	z := int16(uint16(buf[5])<<8 | uint16(buf[4]))

	return Vector3{
		X: float32(x) / 256.0,
		Y: float32(y) / 256.0,
		Z: float32(z) / 256.0,
	}, nil
}

// ReadRegister reads a single register.
func (d *Dev) ReadRegister(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.conn.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteRegister writes a single register.
func (d *Dev) WriteRegister(reg, value byte) error {
	return d.conn.Tx([]byte{reg, value}, nil)
}

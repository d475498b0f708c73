package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/Donutboy2003/HackED2026/internal/adxl343"
	"github.com/Donutboy2003/HackED2026/internal/config"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// openAccel initializes the periph host, opens the configured kernel
// I2C bus, and wakes the ADXL343 on it.
func openAccel() (*adxl343.Dev, i2c.BusCloser, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, nil, fmt.Errorf("open I2C bus %q: %w", cfg.I2CBus, err)
	}

	dev := adxl343.New(bus, cfg.AccelI2CAddr)
	if err := dev.Init(); err != nil {
		bus.Close()
		return nil, nil, err
	}

	log.Printf("producer: ADXL343 initialized on %s @ 0x%02X", bus, cfg.AccelI2CAddr)
	return dev, bus, nil
}

// RunTiltProducer is the main acquisition loop: initialize the sensor,
// calibrate the zero offsets, then stream filtered roll/pitch to out as
// `%.4f,%.4f` lines forever. It only returns on an initialization or
// calibration failure; steady-state read errors drop that tick's sample
// and keep going.
func RunTiltProducer(out io.Writer) error {
	dev, bus, err := openAccel()
	if err != nil {
		return err
	}
	defer bus.Close()

	p := NewPipeline(orientation.NewAccelSource(dev), out)

	log.Printf("producer: calibrating over %d samples, hold the device still", CalibrationSamples)
	if err := p.Calibrate(CalibrationSamples, CalibrationInterval); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	off := p.Offsets()
	log.Printf("producer: calibration done, roll_offset=%.4f pitch_offset=%.4f", off.RollOffset, off.PitchOffset)

	time.Sleep(CalibrationSettle)
	log.Println("producer: streaming")

	ticker := time.NewTicker(SampleInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := p.Step(); err != nil {
			// Best effort: one bad transaction must not kill the stream.
			log.Printf("producer: sample dropped: %v", err)
		}
	}
	return nil
}

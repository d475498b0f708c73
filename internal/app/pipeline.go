package app

import (
	"fmt"
	"io"
	"time"

	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// Acquisition contract. These values match the microcontroller variant
// of the producer bit for bit; both ends of the wire depend on them.
const (
	// CalibrationSamples is how many pre-offset samples the startup
	// calibration averages. The device must be held motionless at its
	// neutral pose for the whole window.
	CalibrationSamples = 50

	// CalibrationInterval separates consecutive calibration reads.
	CalibrationInterval = 20 * time.Millisecond

	// CalibrationSettle is observed once between calibration and
	// streaming.
	CalibrationSettle = time.Second

	// SampleInterval is the steady-state emission cadence (~60 Hz,
	// best effort).
	SampleInterval = 16 * time.Millisecond
)

// Pipeline owns the calibration offsets and filter state for one
// acquisition run: read → derive angles → subtract offsets → smooth →
// emit. Single-threaded; nothing here is safe for concurrent use.
type Pipeline struct {
	src     orientation.Source
	out     io.Writer
	offsets orientation.Calibration
	filter  *orientation.Filter
}

// NewPipeline builds a pipeline reading angles from src and emitting
// wire-format lines to out.
func NewPipeline(src orientation.Source, out io.Writer) *Pipeline {
	return &Pipeline{
		src:    src,
		out:    out,
		filter: orientation.NewFilter(orientation.DefaultAlpha),
	}
}

// Calibrate takes exactly samples reads, interval apart, and freezes
// their mean as the zero offsets. A failed read aborts calibration:
// a sensor that cannot be read reliably at startup has no business
// streaming.
func (p *Pipeline) Calibrate(samples int, interval time.Duration) error {
	var cal orientation.Calibrator
	for i := 0; i < samples; i++ {
		a, err := p.src.Next()
		if err != nil {
			return fmt.Errorf("calibration sample %d/%d: %w", i+1, samples, err)
		}
		cal.Add(a)
		time.Sleep(interval)
	}
	p.offsets = cal.Offsets()
	return nil
}

// Offsets returns the frozen calibration offsets.
func (p *Pipeline) Offsets() orientation.Calibration {
	return p.offsets
}

// Next reads one sample, applies the offsets, and folds it into the
// filter. On a read error the filter state is left untouched.
func (p *Pipeline) Next() (orientation.Angles, error) {
	a, err := p.src.Next()
	if err != nil {
		return orientation.Angles{}, err
	}
	return p.filter.Update(p.offsets.Apply(a)), nil
}

// Step runs one streaming iteration: Next plus one wire-format line.
// The line is written in a single Write call so a line-buffered reader
// sees each sample immediately.
func (p *Pipeline) Step() error {
	f, err := p.Next()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.out, "%.4f,%.4f\n", f.Roll, f.Pitch); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	return nil
}

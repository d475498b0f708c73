package app

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Donutboy2003/HackED2026/internal/adxl343"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// constSource always returns the same angles, like a sensor at rest.
type constSource struct {
	angles orientation.Angles
}

func (s *constSource) Next() (orientation.Angles, error) {
	return s.angles, nil
}

// flakySource fails the first n reads, then behaves like constSource.
type flakySource struct {
	fails  int
	angles orientation.Angles
}

func (s *flakySource) Next() (orientation.Angles, error) {
	if s.fails > 0 {
		s.fails--
		return orientation.Angles{}, errors.New("bus transaction failed")
	}
	return s.angles, nil
}

func TestCalibrateFreezesMean(t *testing.T) {
	src := &constSource{angles: orientation.Angles{Roll: 0.25, Pitch: -0.125}}
	p := NewPipeline(src, &bytes.Buffer{})

	if err := p.Calibrate(CalibrationSamples, 0); err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	off := p.Offsets()
	if off.RollOffset != 0.25 || off.PitchOffset != -0.125 {
		t.Errorf("offsets = %+v, want exactly the constant input", off)
	}
}

func TestCalibrateAbortsOnReadError(t *testing.T) {
	src := &flakySource{fails: 1}
	p := NewPipeline(src, &bytes.Buffer{})

	if err := p.Calibrate(CalibrationSamples, 0); err == nil {
		t.Fatal("Calibrate succeeded despite a failed read")
	}
}

func TestSteadyStateEmitsZeros(t *testing.T) {
	// A sensor at rest (1 g straight down), calibrated against itself,
	// must stream 0.0000,0.0000 from the first sample on: zero input
	// into a zero-state filter stays zero.
	src := &constSource{angles: orientation.FromAccel(adxl343.Vector3{X: 0, Y: 0, Z: 1})}
	var out bytes.Buffer
	p := NewPipeline(src, &out)

	if err := p.Calibrate(CalibrationSamples, 0); err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := p.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for i, line := range lines {
		if line != "0.0000,0.0000" {
			t.Errorf("line %d = %q, want 0.0000,0.0000", i, line)
		}
	}
}

func TestStepResponseConverges(t *testing.T) {
	// Uncalibrated step input of 0.5 rad roll: the emitted value must
	// approach 0.5 monotonically and be within 1% by iteration 21.
	src := &constSource{angles: orientation.Angles{Roll: 0.5}}
	var out bytes.Buffer
	p := NewPipeline(src, &out)

	var last orientation.Angles
	prev := 0.0
	for i := 1; i <= 21; i++ {
		a, err := p.Next()
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if a.Roll <= prev {
			t.Fatalf("iteration %d: roll %v not monotonically increasing", i, a.Roll)
		}
		prev = a.Roll
		last = a
	}

	if diff := 0.5 - last.Roll; diff > 0.005 {
		t.Errorf("after 21 iterations roll = %v, want within 1%% of 0.5", last.Roll)
	}
}

func TestWireFormat(t *testing.T) {
	// The wire protocol is %.4f semantics, no more and no less.
	got := fmt.Sprintf("%.4f,%.4f", 1.23456, -0.00001)
	if got != "1.2346,-0.0000" {
		t.Errorf("wire format = %q, want %q", got, "1.2346,-0.0000")
	}
}

func TestStepEmitsWireFormat(t *testing.T) {
	src := &constSource{angles: orientation.Angles{Roll: 6.1728, Pitch: -0.00005}}
	var out bytes.Buffer
	p := NewPipeline(src, &out)

	// First step: filtered = 0.2·raw = (1.23456, -0.00001).
	if err := p.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if got := out.String(); got != "1.2346,-0.0000\n" {
		t.Errorf("emitted %q, want %q", got, "1.2346,-0.0000\n")
	}
}

func TestStepSurfacesReadError(t *testing.T) {
	src := &flakySource{fails: 1, angles: orientation.Angles{Roll: 0.5}}
	var out bytes.Buffer
	p := NewPipeline(src, &out)

	if err := p.Step(); err == nil {
		t.Fatal("Step succeeded despite a failed read")
	}
	if out.Len() != 0 {
		t.Errorf("failed tick emitted %q, want no emission", out.String())
	}

	// The filter state must be untouched by the failed tick: the next
	// good sample filters exactly as a first sample would.
	a, err := p.Next()
	if err != nil {
		t.Fatalf("Next after failure: %v", err)
	}
	if want := 0.5 * 0.2; a.Roll != want {
		t.Errorf("roll after recovery = %v, want %v", a.Roll, want)
	}
}

package orientation

// Calibration holds the resting-angle bias measured at startup. It is
// computed once and subtracted from every later reading.
type Calibration struct {
	RollOffset  float64
	PitchOffset float64
}

// Apply subtracts the offsets from a.
func (c Calibration) Apply(a Angles) Angles {
	return Angles{
		Roll:  a.Roll - c.RollOffset,
		Pitch: a.Pitch - c.PitchOffset,
	}
}

// Calibrator accumulates pre-offset angle samples taken while the device
// is held motionless at its neutral pose. It does not detect motion; the
// resulting offsets bake in whatever bias was present during sampling.
type Calibrator struct {
	n        int
	sumRoll  float64
	sumPitch float64
}

// Add records one sample.
func (c *Calibrator) Add(a Angles) {
	c.n++
	c.sumRoll += a.Roll
	c.sumPitch += a.Pitch
}

// Count reports how many samples were recorded.
func (c *Calibrator) Count() int {
	return c.n
}

// Offsets returns the arithmetic mean of the recorded samples.
func (c *Calibrator) Offsets() Calibration {
	if c.n == 0 {
		return Calibration{}
	}
	return Calibration{
		RollOffset:  c.sumRoll / float64(c.n),
		PitchOffset: c.sumPitch / float64(c.n),
	}
}

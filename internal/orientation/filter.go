package orientation

// DefaultAlpha gives a time constant of about 5 samples, roughly 80 ms
// at the nominal 60 Hz sample rate.
const DefaultAlpha = 0.2

// Filter is a single-pole exponential moving average over roll and
// pitch: filtered = filtered·(1−α) + raw·α. State starts at zero and
// lives only for the process lifetime.
type Filter struct {
	alpha float64
	roll  float64
	pitch float64
}

// NewFilter returns a Filter with smoothing factor alpha in (0, 1].
func NewFilter(alpha float64) *Filter {
	return &Filter{alpha: alpha}
}

// Update folds one bias-corrected sample into the filter state and
// returns the new filtered angles.
func (f *Filter) Update(raw Angles) Angles {
	f.roll = f.roll*(1-f.alpha) + raw.Roll*f.alpha
	f.pitch = f.pitch*(1-f.alpha) + raw.Pitch*f.alpha
	return Angles{Roll: f.roll, Pitch: f.pitch}
}

// Angles returns the current filter state without updating it.
func (f *Filter) Angles() Angles {
	return Angles{Roll: f.roll, Pitch: f.pitch}
}

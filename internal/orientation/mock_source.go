package orientation

import (
	"math"
	"time"
)

type mockSource struct {
	start time.Time
}

// NewMockSource creates a mock angle source that generates smooth
// changing values, for running consumers without hardware.
func NewMockSource() Source {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) Next() (Angles, error) {
	elapsed := time.Since(m.start).Seconds()

	// ±0.35 rad (~20°) roll, ±0.26 rad (~15°) pitch.
	return Angles{
		Roll:  0.35 * math.Sin(elapsed),
		Pitch: 0.26 * math.Cos(elapsed*0.7),
	}, nil
}

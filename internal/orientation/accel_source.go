package orientation

import (
	"github.com/Donutboy2003/HackED2026/internal/adxl343"
)

type accelSource struct {
	dev *adxl343.Dev
}

// NewAccelSource wraps an initialized ADXL343 as an angle Source.
func NewAccelSource(dev *adxl343.Dev) Source {
	return &accelSource{dev: dev}
}

func (s *accelSource) Next() (Angles, error) {
	v, err := s.dev.ReadAccel()
	if err != nil {
		return Angles{}, err
	}
	return FromAccel(v), nil
}

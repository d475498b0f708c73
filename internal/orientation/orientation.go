package orientation

import (
	"math"

	"github.com/Donutboy2003/HackED2026/internal/adxl343"
)

// Angles is the tilt of the sensor in radians.
type Angles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
}

// Source is anything that can provide tilt angles over time: the real
// accelerometer, a mock source, a replay source from file, etc.
type Source interface {
	Next() (Angles, error)
}

// FromAccel derives roll and pitch from a static gravity vector:
//
//	roll  = atan2(y, z)
//	pitch = atan2(-x, sqrt(y² + z²))
//
// Roll uses only the y/z plane so it is insensitive to forward tilt.
// Pitch divides by the combined y/z magnitude rather than z alone, which
// keeps it numerically stable while the sensor is simultaneously rolled.
// Under dynamic acceleration these are not physical tilt angles.
func FromAccel(v adxl343.Vector3) Angles {
	fx := float64(v.X)
	fy := float64(v.Y)
	fz := float64(v.Z)

	return Angles{
		Roll:  math.Atan2(fy, fz),
		Pitch: math.Atan2(-fx, math.Sqrt(fy*fy+fz*fz)),
	}
}

package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// RunMockProducer streams mock angles to out in the same wire format
// and at the same cadence as the real producer, for exercising
// downstream consumers without hardware. The mock has no mounting bias,
// so no calibration pass runs.
func RunMockProducer(out io.Writer) error {
	p := NewPipeline(orientation.NewMockSource(), out)

	log.Println("mock producer: streaming")

	ticker := time.NewTicker(SampleInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := p.Step(); err != nil {
			return fmt.Errorf("mock producer: %w", err)
		}
	}
	return nil
}

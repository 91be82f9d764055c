// Package sensor models the EMG signal source. The hardware samples a 10-bit
// ADC (0..1023) and reports voltages as raw*5/1023; the simulator produces
// values in the same range so readings captured without hardware look like
// real ones.
package sensor

import "math/rand"

// ADC characteristics of the sensor board.
const (
	adcMax      = 1023
	adcRefVolts = 5.0

	// DefaultSampleRate is the board's sampling rate in Hz.
	DefaultSampleRate = 1000
)

// Source yields one EMG sample per call, in volts.
type Source interface {
	Sample() float64
}

// Simulator produces a resting baseline with occasional activation bursts.
type Simulator struct {
	rnd *rand.Rand

	// remaining counts down the samples left in the current burst.
	remaining int
	amplitude float64
}

func NewSimulator(seed int64) *Simulator {
	return &Simulator{rnd: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) Sample() float64 {
	if s.remaining == 0 && s.rnd.Float64() < 0.02 {
		s.remaining = 5 + s.rnd.Intn(20)
		s.amplitude = 0.5 + s.rnd.Float64()*0.5
	}

	raw := s.rnd.Float64() * 0.05 // resting noise floor
	if s.remaining > 0 {
		s.remaining--
		raw += s.amplitude * s.rnd.Float64()
	}
	if raw > 1 {
		raw = 1
	}
	return float64(int(raw*adcMax)) * adcRefVolts / adcMax
}

// Capture reads n samples from src.
func Capture(src Source, n int) []float64 {
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, src.Sample())
	}
	return values
}

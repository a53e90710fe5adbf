package audiot

// This file synthesizes PC speaker sounds. A buzzer chunk is a stream of
// timer dividers played at 140 commands per second; each divider
// reprograms the PIT square wave channel, zero silences it.

import (
	"math"

	"github.com/bradfitz/iter"
)

const (
	// buzzerClock is the PIT input clock in Hz.
	buzzerClock = 1193180

	// buzzerCommandRate is how many dividers play per second.
	buzzerCommandRate = 140
)

// BuzzerSound is a PC speaker sound: one timer divider per 1/140 s tick.
type BuzzerSound struct {
	Dividers []byte
}

// Samples renders the sound to 8-bit unsigned mono PCM at the passed
// rate.
func (s *BuzzerSound) Samples(rate int) []byte {
	gen := newSquareWave(rate, 0xFF, 0x00, 0x80)
	delay := float64(rate) / buzzerCommandRate

	var out []byte
	offset := 0.0
	last := -1 // invalid divider, forces the first reprogram

	for _, divider := range s.Dividers {
		if int(divider) != last {
			if divider != 0 {
				gen.setFrequency(buzzerClock / (float64(divider) * 60))
			} else {
				gen.setFrequency(0)
			}
		}
		last = int(divider)

		length := offset + delay
		count := int(math.Round(length))
		out = gen.generate(out, count)
		offset = length - float64(count)
	}
	return out
}

// squareWave is a fixed 50% duty square wave generator with the period
// rounded to whole samples, matching the sound of the original exporter.
type squareWave struct {
	sampleRate         int
	high, low, silence byte

	frequency    float64
	periodLength int
	phaseIndex   int
	threshold    int
}

func newSquareWave(sampleRate int, high, low, silence byte) *squareWave {
	return &squareWave{
		sampleRate:   sampleRate,
		high:         high,
		low:          low,
		silence:      silence,
		periodLength: 1,
	}
}

func (g *squareWave) setFrequency(frequency float64) {
	if frequency == g.frequency {
		return
	}
	phase := float64(g.phaseIndex)

	if frequency > 0 {
		period := float64(g.sampleRate) / frequency
		phase *= period / float64(g.periodLength)
		g.periodLength = int(math.Round(period))
		if g.periodLength < 1 {
			g.periodLength = 1
		}
		g.phaseIndex = int(phase) % g.periodLength
	} else {
		g.periodLength = 1
		g.phaseIndex = 0
	}

	g.frequency = frequency
	g.threshold = int(math.Round(float64(g.periodLength) / 2))
}

// generate appends count samples to out and returns it. Frequencies at
// or below 1 Hz render as silence.
func (g *squareWave) generate(out []byte, count int) []byte {
	if g.frequency <= 1 {
		for range iter.N(count) {
			out = append(out, g.silence)
		}
		return out
	}
	for range iter.N(count) {
		if g.phaseIndex < g.threshold {
			out = append(out, g.high)
		} else {
			out = append(out, g.low)
		}
		g.phaseIndex = (g.phaseIndex + 1) % g.periodLength
	}
	return out
}

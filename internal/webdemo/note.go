package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuner/dsp/core"
)

const (
	referenceA4 = 440.0
	// inTuneCents is the tolerance shown as "in tune".
	inTuneCents = 5.0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Status classifies a reading relative to its target note.
type Status int

const (
	StatusNone Status = iota
	StatusInTune
	StatusFlat
	StatusSharp
)

func (s Status) String() string {
	switch s {
	case StatusInTune:
		return "in-tune"
	case StatusFlat:
		return "flat"
	case StatusSharp:
		return "sharp"
	default:
		return "none"
	}
}

// Note is the equal-tempered note nearest to a frequency.
type Note struct {
	Name      string
	Octave    int
	Cents     float64
	Frequency float64
	Target    float64
}

// NoteFor maps freqHz to the nearest note of the A4 = 440 Hz scale. A
// non-positive frequency yields the placeholder note "-".
func NoteFor(freqHz float64) Note {
	if !(freqHz > 0) || !core.IsFinite(freqHz) {
		return Note{Name: "-"}
	}

	c0 := referenceA4 * math.Pow(2, -4.75)
	halfSteps := int(math.Round(12 * math.Log2(freqHz/c0)))
	octave := core.FloorDiv(halfSteps, 12)
	index := halfSteps - 12*octave

	target := c0 * math.Pow(2, float64(halfSteps)/12)
	return Note{
		Name:      noteNames[index],
		Octave:    octave,
		Cents:     1200 * math.Log2(freqHz/target),
		Frequency: freqHz,
		Target:    target,
	}
}

// Status reports whether n is in tune, flat or sharp.
func (n Note) Status() Status {
	switch {
	case n.Frequency <= 0:
		return StatusNone
	case math.Abs(n.Cents) < inTuneCents:
		return StatusInTune
	case n.Cents < 0:
		return StatusFlat
	default:
		return StatusSharp
	}
}

// GaugeDegrees maps cents to a needle angle, ±50 cents to ±90 degrees.
func (n Note) GaugeDegrees() float64 {
	return core.Clamp(n.Cents*1.8, -90, 90)
}

func (n Note) String() string {
	if n.Frequency <= 0 {
		return n.Name
	}
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

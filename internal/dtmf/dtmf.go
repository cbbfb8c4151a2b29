// Package dtmf synthesizes dual-tone multi-frequency keypad signals.
package dtmf

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultSampleRate is the WAV sample rate used when none is configured.
const DefaultSampleRate = 44100

const gain = 0.3

// ErrUnknownSpeed is returned by ParseSpeed for unsupported names.
var ErrUnknownSpeed = errors.New("unknown speed")

// Tone is the frequency pair for one keypad symbol.
type Tone struct {
	Key  rune
	Low  int
	High int
}

var keypad = map[rune][2]int{
	'1': {697, 1209}, '2': {697, 1336}, '3': {697, 1477},
	'4': {770, 1209}, '5': {770, 1336}, '6': {770, 1477},
	'7': {852, 1209}, '8': {852, 1336}, '9': {852, 1477},
	'*': {941, 1209}, '0': {941, 1336}, '#': {941, 1477},
}

// Keys lists the keypad in row order.
const Keys = "123456789*0#"

// Speed selects tone and gap durations.
type Speed int

const (
	Normal Speed = iota
	Fast
	Slow
)

func (s Speed) String() string {
	switch s {
	case Fast:
		return "fast"
	case Slow:
		return "slow"
	default:
		return "normal"
	}
}

// Durations returns the tone and gap lengths in seconds.
func (s Speed) Durations() (tone, gap float64) {
	switch s {
	case Fast:
		return 0.1, 0.05
	case Slow:
		return 0.25, 0.15
	default:
		return 0.15, 0.1
	}
}

// ParseSpeed maps "fast", "normal" or "slow" to a Speed.
func ParseSpeed(name string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return Normal, nil
	case "fast":
		return Fast, nil
	case "slow":
		return Slow, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownSpeed, name)
}

// Lookup returns the tone for key.
func Lookup(key rune) (Tone, bool) {
	pair, ok := keypad[key]
	if !ok {
		return Tone{}, false
	}
	return Tone{Key: key, Low: pair[0], High: pair[1]}, true
}

// Tones returns the tones for the keypad symbols in input, skipping anything
// that is not on the keypad.
func Tones(input string) []Tone {
	var tones []Tone
	for _, r := range strings.ToUpper(input) {
		if tone, ok := Lookup(r); ok {
			tones = append(tones, tone)
		}
	}
	return tones
}

// Synthesize renders input as mono samples in [-1, 1].
//
// The buffer reserves one tone+gap slot per input character, but only keypad
// symbols are rendered, back to back from the start. Anything else leaves
// trailing silence.
func Synthesize(input string, speed Speed, sampleRate int) []float64 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	tone, gap := speed.Durations()
	toneSamples := int(math.Round(tone * float64(sampleRate)))
	slotSamples := toneSamples + int(math.Round(gap*float64(sampleRate)))

	samples := make([]float64, len([]rune(input))*slotSamples)
	offset := 0
	for _, t := range Tones(input) {
		for i := 0; i < toneSamples; i++ {
			at := float64(i) / float64(sampleRate)
			samples[offset+i] = gain * (math.Sin(2*math.Pi*float64(t.Low)*at) + math.Sin(2*math.Pi*float64(t.High)*at))
		}
		offset += slotSamples
	}
	return samples
}

// Duration returns the length in seconds of the buffer Synthesize produces.
func Duration(input string, speed Speed) float64 {
	tone, gap := speed.Durations()
	return float64(len([]rune(input))) * (tone + gap)
}

// audio_chip.go - Bounded tone pool and real-time triangle-wave mixer

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"sync"
)

const (
	SAMPLE_RATE    = 44100
	AUDIO_CHANNELS = 2
)

const (
	MAX_OSCILLATORS = 512 // FIFO bound on queued tones
	TONE_DURATION   = 0.1 // Seconds per tone
	MIX_HEADROOM    = 0.5 // Master scale after averaging
)

// Tone frequency mapping: freq = FREQ_FLOOR + FREQ_SPAN * v^2 for a
// normalized array value v in [0,1]. The square compresses the map toward
// the low end so small value differences stay audible.
const (
	FREQ_FLOOR = 120.0
	FREQ_SPAN  = 1200.0
)

// Envelope breakpoints, as fractions of tone duration.
// Linear attack to 1.0, linear decay to the sustain level, hold, then
// linear release to 0.
const (
	ENV_ATTACK_END    = 0.025
	ENV_DECAY_END     = 0.125
	ENV_RELEASE_START = 0.7
	ENV_SUSTAIN_LEVEL = 0.9
)

// Oscillator is a scheduled, time-bounded tone request. Immutable once
// queued; it expires when the pool clock passes startTime + duration.
type Oscillator struct {
	frequency float64 // Tone frequency in Hz
	startTime float64 // Pool clock time at which the tone begins
	duration  float64 // Lifetime in seconds
}

func (o Oscillator) activeAt(t float64) bool {
	return t >= o.startTime && t < o.startTime+o.duration
}

// SoundChip owns the oscillator pool shared between the stepping lane
// (PlayValue) and the audio lane (MixInto). The mutex is held only to
// insert, prune or snapshot the pool; per-sample mixing runs against a
// local snapshot so neither lane stalls the other.
type SoundChip struct {
	mutex       sync.Mutex
	oscillators []Oscillator
	currentTime float64 // Monotonic pool clock, advanced by the mixer
	enabled     bool
	output      AudioOutput
}

func NewSoundChip(backend int) (*SoundChip, error) {
	chip := &SoundChip{
		oscillators: make([]Oscillator, 0, MAX_OSCILLATORS),
	}
	output, err := NewAudioOutput(backend, SAMPLE_RATE, chip)
	if err != nil {
		return nil, err
	}
	chip.output = output
	return chip, nil
}

// PlayValue queues a tone for a normalized array value in [0,1]. When the
// pool is full the single oldest entry is evicted first; requests are never
// rejected.
func (chip *SoundChip) PlayValue(normalized float64) {
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	freq := FREQ_FLOOR + FREQ_SPAN*normalized*normalized

	chip.mutex.Lock()
	if len(chip.oscillators) >= MAX_OSCILLATORS {
		copy(chip.oscillators, chip.oscillators[1:])
		chip.oscillators = chip.oscillators[:len(chip.oscillators)-1]
	}
	chip.oscillators = append(chip.oscillators, Oscillator{
		frequency: freq,
		startTime: chip.currentTime,
		duration:  TONE_DURATION,
	})
	chip.mutex.Unlock()
}

// ActiveOscillators returns the number of tones currently queued.
func (chip *SoundChip) ActiveOscillators() int {
	chip.mutex.Lock()
	defer chip.mutex.Unlock()
	return len(chip.oscillators)
}

// MixInto fills an interleaved sample buffer. One frame advances the pool
// clock by 1/SAMPLE_RATE; every active oscillator contributes
// envelope * triangle, the sum is averaged over the active count, scaled by
// the headroom factor and duplicated across all channels. Frames with no
// active oscillator are pure silence.
//
// Runs on the audio lane. The lock covers only prune + snapshot + clock
// advance, never the mixing loop.
func (chip *SoundChip) MixInto(samples []float32, channels int) {
	if channels <= 0 {
		return
	}
	frames := len(samples) / channels

	chip.mutex.Lock()
	t := chip.currentTime
	kept := chip.oscillators[:0]
	for _, o := range chip.oscillators {
		if t < o.startTime+o.duration {
			kept = append(kept, o)
		}
	}
	chip.oscillators = kept
	snapshot := append([]Oscillator(nil), chip.oscillators...)
	enabled := chip.enabled
	chip.currentTime += float64(frames) / SAMPLE_RATE
	chip.mutex.Unlock()

	if !enabled || len(snapshot) == 0 {
		clear(samples)
		return
	}

	for frame := 0; frame < frames; frame++ {
		var sum float64
		active := 0
		for _, o := range snapshot {
			if !o.activeAt(t) {
				continue
			}
			rel := t - o.startTime
			sum += toneEnvelope(rel/o.duration) * triangleWave(rel*o.frequency)
			active++
		}
		var sample float32
		if active > 0 {
			sample = float32(sum / float64(active) * MIX_HEADROOM)
		}
		for c := 0; c < channels; c++ {
			samples[frame*channels+c] = sample
		}
		t += 1.0 / SAMPLE_RATE
	}
}

// toneEnvelope evaluates the fixed ADSR shape at x in [0,1] of the tone's
// lifetime. Outside [0,1) the tone is silent.
func toneEnvelope(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < ENV_ATTACK_END:
		return x / ENV_ATTACK_END
	case x < ENV_DECAY_END:
		return 1.0 - (x-ENV_ATTACK_END)/(ENV_DECAY_END-ENV_ATTACK_END)*(1.0-ENV_SUSTAIN_LEVEL)
	case x < ENV_RELEASE_START:
		return ENV_SUSTAIN_LEVEL
	case x < 1.0:
		return ENV_SUSTAIN_LEVEL * (1.0 - (x-ENV_RELEASE_START)/(1.0-ENV_RELEASE_START))
	default:
		return 0
	}
}

// triangleWave evaluates a period-1 triangle in [-1,1], phase anchored at 0
// rising.
func triangleWave(x float64) float64 {
	x -= float64(int64(x))
	if x < 0 {
		x += 1.0
	}
	switch {
	case x < 0.25:
		return 4.0 * x
	case x < 0.75:
		return 2.0 - 4.0*x
	default:
		return 4.0*x - 4.0
	}
}

func (chip *SoundChip) Start() {
	chip.mutex.Lock()
	chip.enabled = true
	chip.mutex.Unlock()
	chip.output.Start()
}

func (chip *SoundChip) Stop() {
	chip.mutex.Lock()
	chip.enabled = false
	chip.mutex.Unlock()
	chip.output.Stop()
	chip.output.Close()
}

// audio_interface.go - Audio output interface and backend selection

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "fmt"

// AudioOutput defines the minimal interface an audio backend must implement.
// The backend pulls mixed samples from the SoundChip on its own real-time
// goroutine; the stepping lane never calls into the backend directly.
type AudioOutput interface {
	Start()
	Stop()
	Close()
	IsStarted() bool
}

// Predefined audio backend types
const (
	AUDIO_BACKEND_OTO  = iota // OTO v3 real-time output
	AUDIO_BACKEND_NONE        // Silent stub for tests and -mute
)

// NewAudioOutput creates an audio output instance using the specified backend
// and attaches it to the chip that will feed it.
func NewAudioOutput(backend int, sampleRate int, chip *SoundChip) (AudioOutput, error) {
	switch backend {
	case AUDIO_BACKEND_OTO:
		player, err := NewOtoPlayer(sampleRate)
		if err != nil {
			return nil, err
		}
		player.SetupPlayer(chip)
		return player, nil
	case AUDIO_BACKEND_NONE:
		return &nullAudioOutput{}, nil
	default:
		return nil, fmt.Errorf("unknown audio backend: %d", backend)
	}
}

// nullAudioOutput discards everything. Used when sound is muted and by the
// test suite, which drives SoundChip.MixInto directly.
type nullAudioOutput struct {
	started bool
}

func (no *nullAudioOutput) Start()          { no.started = true }
func (no *nullAudioOutput) Stop()           { no.started = false }
func (no *nullAudioOutput) Close()          { no.started = false }
func (no *nullAudioOutput) IsStarted() bool { return no.started }

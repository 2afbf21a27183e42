//go:build headless

// audio_backend_headless.go - Stub audio output for headless builds

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

type OtoPlayer struct {
	started bool
	chip    *SoundChip
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(chip *SoundChip) {
	op.chip = chip
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}

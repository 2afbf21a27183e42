// audio_chip_race_test.go - Concurrent access between stepping and audio lanes

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"sync"
	"testing"
)

// TestSoundChip_ConcurrentRequestAndMix hammers the pool from a stepping
// goroutine while an audio goroutine mixes continuously. Run with -race.
func TestSoundChip_ConcurrentRequestAndMix(t *testing.T) {
	chip := newTestChip(t)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		samples := make([]float32, 256*AUDIO_CHANNELS)
		for {
			select {
			case <-stop:
				return
			default:
				chip.MixInto(samples, AUDIO_CHANNELS)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5000; i++ {
			chip.PlayValue(float64(i%100) / 100.0)
		}
		close(stop)
	}()

	wg.Wait()

	if got := chip.ActiveOscillators(); got > MAX_OSCILLATORS {
		t.Fatalf("pool grew past its bound under contention: %d", got)
	}
}

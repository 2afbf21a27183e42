// main.go - Entry point wiring array, audio, video and session together

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"
)

func boilerPlate() {
	fmt.Println("\nSortScope - watch and hear five sorting algorithms at work")
	fmt.Println("(c) 2025 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/SortScope")
	fmt.Println("License: GPLv3 or later")
	fmt.Println("\nKeys: 1-5 start sort | q/w/e/r/t randomize | space terminate | c copy array | esc quit")
}

func parseAlgorithm(name string) (SortAlgorithm, bool) {
	switch strings.ToLower(name) {
	case "bubble":
		return SORT_BUBBLE, true
	case "insertion":
		return SORT_INSERTION, true
	case "selection":
		return SORT_SELECTION, true
	case "merge":
		return SORT_MERGE, true
	case "quick":
		return SORT_QUICK, true
	}
	return 0, false
}

func parseGenerator(name string) (Generator, bool) {
	for _, g := range Generators() {
		if g.String() == strings.ToLower(name) {
			return g, true
		}
	}
	return 0, false
}

func formatValues(values []int) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}

func main() {
	size := flag.Int("size", 64, "number of array elements")
	algoFlag := flag.String("algorithm", "", "start immediately: bubble|insertion|selection|merge|quick")
	genFlag := flag.String("generator", "shuffle", "initial condition: shuffle|near-duplicate|cubic|quintic|descending")
	script := flag.String("script", "", "Lua script defining generate(n) for the initial array")
	terminal := flag.Bool("terminal", false, "render on the terminal instead of a window")
	mute := flag.Bool("mute", false, "disable audio output")
	scale := flag.Int("scale", 1, "window scale factor")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	seed := flag.Uint64("seed", 0, "PRNG seed for the randomizers (0 = time-based)")
	flag.Parse()

	if *size < 2 {
		fmt.Fprintf(os.Stderr, "array size must be at least 2, got %d\n", *size)
		os.Exit(1)
	}

	if !*terminal {
		boilerPlate()
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s^0x9E3779B97F4A7C15))

	generator, ok := parseGenerator(*genFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown generator %q\n", *genFlag)
		os.Exit(1)
	}

	audioBackend := AUDIO_BACKEND_OTO
	if *mute {
		audioBackend = AUDIO_BACKEND_NONE
	}
	chip, err := NewSoundChip(audioBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sound, continuing muted: %v\n", err)
		chip, _ = NewSoundChip(AUDIO_BACKEND_NONE)
	}
	chip.Start()

	var values []int
	if *script != "" {
		values, err = GenerateFromScript(*script, *size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else {
		values = GenerateValues(generator, *size, rng)
	}

	panel := NewBarPanel(*size, PANEL_WIDTH, PANEL_HEIGHT)
	marks := NewMarkStore(*size, panel.SetBarColor)
	arr := NewSortArray(values, marks, chip)
	session := NewSortSession(arr)

	videoBackend := VIDEO_BACKEND_EBITEN
	if *terminal {
		videoBackend = VIDEO_BACKEND_TERMINAL
	}
	video, err := NewVideoOutput(videoBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	_ = video.SetDisplayConfig(DisplayConfig{
		Width:      PANEL_WIDTH,
		Height:     PANEL_HEIGHT,
		Scale:      *scale,
		Fullscreen: *fullscreen,
	})

	// Keys may arrive on a backend goroutine; the channel hands them to the
	// stepping lane so array, marks and session stay single-owner.
	keyCh := make(chan byte, 16)
	video.SetKeyHandler(func(b byte) {
		select {
		case keyCh <- b:
		default:
		}
	})

	quitCh := make(chan struct{})
	quit := func() {
		select {
		case <-quitCh:
		default:
			close(quitCh)
		}
		_ = video.Stop()
	}

	randomizeKeys := map[byte]Generator{
		'q': GEN_SHUFFLE,
		'w': GEN_NEAR_DUPLICATE,
		'e': GEN_CUBIC,
		'r': GEN_QUINTIC,
		't': GEN_DESCENDING,
	}

	handleKey := func(b byte) {
		switch {
		case b >= '1' && b <= '5':
			session.Start(SORT_BUBBLE + SortAlgorithm(b-'1'))
		case b == ' ':
			session.Terminate()
		case b == 0x1B:
			quit()
		default:
			if g, ok := randomizeKeys[b]; ok && !session.Running() {
				arr.SetValues(GenerateValues(g, *size, rng))
			}
		}
	}

	tick := func() {
		for {
			select {
			case b := <-keyCh:
				handleKey(b)
				continue
			default:
			}
			break
		}
		session.Advance()
		current := arr.Values()
		_ = video.UpdateFrame(panel.Render(current))
		if br, ok := video.(BarRenderer); ok {
			br.UpdateBars(current, panel.Colors())
		}
	}

	if sc, ok := video.(StatusCapable); ok {
		sc.SetStatusProvider(func() string {
			label := "ready"
			if session.Running() {
				label = fmt.Sprintf("%s: %s", session.Algorithm(), session.State())
			}
			return fmt.Sprintf("SortScope | %s | %d elements | %d steps", label, arr.Size(), session.StepCount())
		})
	}
	if cc, ok := video.(ClipboardCapable); ok {
		cc.SetClipboardProvider(func() string {
			return formatValues(arr.Values())
		})
	}

	if alg, ok := parseAlgorithm(*algoFlag); ok {
		session.Start(alg)
	} else if *algoFlag != "" {
		fmt.Fprintf(os.Stderr, "unknown algorithm %q\n", *algoFlag)
		os.Exit(1)
	}

	if tc, ok := video.(TickCapable); ok {
		// The backend's frame loop drives the stepping lane.
		tc.SetTickHandler(tick)
		if err := video.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start video: %v\n", err)
			os.Exit(1)
		}
		type doneCapable interface{ Done() <-chan struct{} }
		if dc, ok := video.(doneCapable); ok {
			<-dc.Done()
		} else {
			<-quitCh
		}
	} else {
		if err := video.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start video: %v\n", err)
			os.Exit(1)
		}
		ticker := time.NewTicker(time.Second / TICK_RATE)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ticker.C:
				tick()
			case <-quitCh:
				break loop
			}
		}
	}

	chip.Stop()
	_ = video.Close()
}

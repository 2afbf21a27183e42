// video_backend_terminal.go - ANSI cell renderer on the controlling TTY

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ansiPalette maps the bar colors onto xterm-256 color indices.
var ansiPalette = [...]int{
	COLOR_NEUTRAL:  252,
	COLOR_COMPARE:  196,
	COLOR_TRACK:    45,
	COLOR_PIVOT:    220,
	COLOR_VERIFIED: 46,
}

// TerminalOutput renders the bars as colored block columns on the TTY and
// routes raw-mode keypresses to the key handler. It is a cell backend: it
// implements BarRenderer and ignores RGBA frames.
type TerminalOutput struct {
	mutex          sync.Mutex
	running        bool
	fd             int
	oldTermState   *term.State
	cols, rows     int
	stopCh         chan struct{}
	done           chan struct{}
	keyHandler     func(byte)
	statusProvider func() string
	builder        strings.Builder
}

func NewTerminalOutput() (VideoOutput, error) {
	return &TerminalOutput{
		cols: 80,
		rows: 24,
	}, nil
}

// Start puts the terminal in raw mode, hides the cursor and begins routing
// stdin bytes to the key handler on a reader goroutine.
func (to *TerminalOutput) Start() error {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	if to.running {
		return nil
	}
	to.fd = int(os.Stdin.Fd())
	if term.IsTerminal(to.fd) {
		oldState, err := term.MakeRaw(to.fd)
		if err != nil {
			return &VideoError{Operation: "start", Details: "failed to set raw mode", Err: err}
		}
		to.oldTermState = oldState
		if cols, rows, err := term.GetSize(to.fd); err == nil {
			to.cols, to.rows = cols, rows
		}
	}
	fmt.Print("\x1b[?25l\x1b[2J") // hide cursor, clear screen
	to.stopCh = make(chan struct{})
	to.done = make(chan struct{})
	to.running = true

	go func() {
		defer close(to.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-to.stopCh:
				return
			default:
			}
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				to.mutex.Lock()
				handler := to.keyHandler
				to.mutex.Unlock()
				if handler != nil {
					handler(b)
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

func (to *TerminalOutput) Stop() error {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	if !to.running {
		return nil
	}
	to.running = false
	close(to.stopCh)
	fmt.Print("\x1b[?25h\x1b[0m\n") // show cursor, reset attributes
	if to.oldTermState != nil {
		_ = term.Restore(to.fd, to.oldTermState)
		to.oldTermState = nil
	}
	return nil
}

func (to *TerminalOutput) Close() error {
	return to.Stop()
}

func (to *TerminalOutput) IsStarted() bool {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	return to.running
}

func (to *TerminalOutput) SetDisplayConfig(config DisplayConfig) error { return nil }

func (to *TerminalOutput) GetDisplayConfig() DisplayConfig {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	return DisplayConfig{Width: to.cols, Height: to.rows}
}

// UpdateFrame is a no-op: the terminal draws from UpdateBars instead.
func (to *TerminalOutput) UpdateFrame(buffer []byte) error { return nil }

func (to *TerminalOutput) SetKeyHandler(fn func(byte)) {
	to.mutex.Lock()
	to.keyHandler = fn
	to.mutex.Unlock()
}

func (to *TerminalOutput) SetStatusProvider(fn func() string) {
	to.mutex.Lock()
	to.statusProvider = fn
	to.mutex.Unlock()
}

// UpdateBars redraws the whole bar field. One column of cells per bar,
// heights scaled to the cell grid with the same pure function the panel
// uses, top row reserved for the status line.
func (to *TerminalOutput) UpdateBars(values []int, colors []BarColor) {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	if !to.running {
		return
	}

	n := len(values)
	barRows := to.rows - 2
	if barRows < 1 || n == 0 {
		return
	}
	cols := n
	if cols > to.cols {
		cols = to.cols
	}

	b := &to.builder
	b.Reset()
	b.WriteString("\x1b[H\x1b[0m")
	if to.statusProvider != nil {
		status := to.statusProvider()
		if len(status) > to.cols {
			status = status[:to.cols]
		}
		b.WriteString(status)
	}
	b.WriteString("\x1b[K\r\n")

	for row := 0; row < barRows; row++ {
		last := -1
		for i := 0; i < cols; i++ {
			h := BarHeight(values[i], n, barRows)
			if barRows-row <= h {
				c := COLOR_NEUTRAL
				if i < len(colors) {
					c = colors[i]
				}
				if int(c) != last {
					fmt.Fprintf(b, "\x1b[38;5;%dm", ansiPalette[c])
					last = int(c)
				}
				b.WriteString("█")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("\x1b[0m\x1b[K\r\n")
	}
	os.Stdout.WriteString(b.String())
}

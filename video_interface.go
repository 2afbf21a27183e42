// video_interface.go - Video output interface for the bar display

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "fmt"

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

// DisplayConfig contains backend-independent display configuration
type DisplayConfig struct {
	Width      int
	Height     int
	Scale      int // Integer scaling factor for output
	Fullscreen bool
}

// VideoOutput defines the minimal interface that backends must implement
type VideoOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// Display operations
	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	UpdateFrame(buffer []byte) error // Takes raw RGBA pixels only

	// Input routing: one byte per decoded keypress
	SetKeyHandler(fn func(byte))
}

// BarRenderer is an optional capability for cell-based backends that draw
// bars directly instead of consuming the RGBA framebuffer.
type BarRenderer interface {
	UpdateBars(values []int, colors []BarColor)
}

// StatusCapable is an optional capability for backends with a status line.
type StatusCapable interface {
	SetStatusProvider(fn func() string)
}

// TickCapable is an optional capability for backends whose own frame loop
// drives the stepping lane (one callback per frame).
type TickCapable interface {
	SetTickHandler(fn func())
}

// ClipboardCapable is an optional capability for backends that can copy the
// current array to the system clipboard.
type ClipboardCapable interface {
	SetClipboardProvider(fn func() string)
}

// Predefined video backend types
const (
	VIDEO_BACKEND_EBITEN   = iota // Windowed Ebiten backend
	VIDEO_BACKEND_TERMINAL        // ANSI cell renderer on the controlling TTY
	VIDEO_BACKEND_NONE            // Discards frames; used by tests
)

// NewVideoOutput creates a new video output instance using the specified backend
func NewVideoOutput(backend int) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput()
	case VIDEO_BACKEND_TERMINAL:
		return NewTerminalOutput()
	case VIDEO_BACKEND_NONE:
		return &nullVideoOutput{}, nil
	default:
		return nil, &VideoError{
			Operation: "init",
			Details:   fmt.Sprintf("unknown video backend: %d", backend),
		}
	}
}

// nullVideoOutput discards every frame.
type nullVideoOutput struct {
	started bool
	config  DisplayConfig
}

func (nv *nullVideoOutput) Start() error  { nv.started = true; return nil }
func (nv *nullVideoOutput) Stop() error   { nv.started = false; return nil }
func (nv *nullVideoOutput) Close() error  { nv.started = false; return nil }
func (nv *nullVideoOutput) IsStarted() bool { return nv.started }

func (nv *nullVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	nv.config = config
	return nil
}
func (nv *nullVideoOutput) GetDisplayConfig() DisplayConfig { return nv.config }
func (nv *nullVideoOutput) UpdateFrame(buffer []byte) error { return nil }
func (nv *nullVideoOutput) SetKeyHandler(fn func(byte))     {}

//go:build headless

// video_backend_headless.go - Ebiten backend stub for headless builds

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

func NewEbitenOutput() (VideoOutput, error) {
	return nil, &VideoError{
		Operation: "init",
		Details:   "ebiten backend not available in headless build",
	}
}

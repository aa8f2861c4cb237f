//go:build window

package main

// The window backend needs cgo and a display, so it is opt-in.
import _ "github.com/vovakirdan/bubble-dodge/internal/platform/window"

// Package tui provides the Bubble Tea integration for the life simulator.
// It maps keys to simulation commands, renders frames with lipgloss and
// serves independent simulations over SSH via Wish.
package tui

import "time"

// FrameInterval converts a frame cap in frames per second to the minimum
// time between loop iterations. Zero or negative fps means uncapped.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

package tui

import (
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner shows title while action runs. The spinner stays up for at
// least minDuration so fast work does not flash on screen.
func RunWithSpinner(title string, minDuration time.Duration, action func()) error {
	return spinner.New().
		Type(spinner.Dots).
		Title(" " + title).
		Action(func() {
			start := time.Now()
			action()
			if rest := minDuration - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}).
		Run()
}

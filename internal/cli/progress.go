package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RunWithSpinner runs fn while a spinner with suffix is shown on stderr.
// In quiet mode fn runs without one.
func RunWithSpinner(quiet bool, suffix string, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()

	err := fn()
	if err != nil {
		s.FinalMSG = text.FgRed.Sprint("✗ "+suffix) + "\n"
	}
	s.Stop()
	return err
}

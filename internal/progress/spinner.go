package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows an animated indicator while a command waits on something
// slow, typically the remote scrape. On non-TTY output it degrades to a
// single static line so logs stay clean.
type Spinner struct {
	caps    TerminalCapabilities
	symbols ProgressSymbols
	spin    *spinner.Spinner
	out     io.Writer
	message string
}

// NewSpinner builds a spinner writing to out with the given message.
func NewSpinner(out io.Writer, message string) *Spinner {
	caps := DetectTerminalCapabilities()
	return newSpinnerWithCaps(out, message, caps)
}

func newSpinnerWithCaps(out io.Writer, message string, caps TerminalCapabilities) *Spinner {
	s := &Spinner{
		caps:    caps,
		symbols: SelectSymbols(caps),
		out:     out,
		message: message,
	}
	if caps.IsTTY {
		s.spin = spinner.New(spinner.CharSets[s.symbols.SpinnerSet], 100*time.Millisecond,
			spinner.WithWriter(out))
		s.spin.Suffix = " " + message
	}
	return s
}

// Start begins the animation, or prints the message once without a TTY.
func (s *Spinner) Start() {
	if s.spin != nil {
		s.spin.Start()
		return
	}
	fmt.Fprintf(s.out, "%s...\n", s.message)
}

// Succeed stops the animation and prints a final success line.
func (s *Spinner) Succeed(message string) {
	s.stop()
	fmt.Fprintf(s.out, "%s %s\n", s.symbols.Checkmark, message)
}

// Fail stops the animation and prints a final failure line.
func (s *Spinner) Fail(message string) {
	s.stop()
	fmt.Fprintf(s.out, "%s %s\n", s.symbols.Failure, message)
}

func (s *Spinner) stop() {
	if s.spin != nil {
		s.spin.Stop()
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/yosefmih/fibseq/fibonacci"
)

const (
	prompt        = "Enter the number of terms: "
	invalidTerms  = "Please enter a positive integer."
	headerPattern = "Fibonacci Sequence up to %d terms:\n"
)

// Shell is the interactive prompt that asks for a term count and prints
// the leading terms of the sequence.
type Shell struct {
	In       io.Reader
	Out      io.Writer
	Generate fibonacci.Func
	Log      logrus.FieldLogger
}

// Run prompts once, reads a single integer and writes the sequence.
// A non-positive count is not an error: it prints a notice and returns nil.
func (s *Shell) Run() error {
	if _, err := fmt.Fprint(s.Out, prompt); err != nil {
		return err
	}

	var terms int
	if _, err := fmt.Fscan(s.In, &terms); err != nil {
		return fmt.Errorf("reading number of terms: %w", err)
	}

	if terms <= 0 {
		s.Log.WithField("terms", terms).Debug("rejecting non-positive term count")
		_, err := fmt.Fprintln(s.Out, invalidTerms)
		return err
	}

	s.Log.WithField("terms", terms).Debug("generating sequence")
	if _, err := fmt.Fprintf(s.Out, headerPattern, terms); err != nil {
		return err
	}
	for i := 0; i < terms; i++ {
		if _, err := fmt.Fprintf(s.Out, "%d ", s.Generate(i)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.Out)
	return err
}

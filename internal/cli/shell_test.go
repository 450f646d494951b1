package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/yosefmih/fibseq/fibonacci"
)

func runShell(t *testing.T, input string) (string, error) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	s := &Shell{
		In:       strings.NewReader(input),
		Out:      &out,
		Generate: fibonacci.Recursive,
		Log:      log,
	}
	err := s.Run()
	return out.String(), err
}

func TestShellOutput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5\n", "Enter the number of terms: Fibonacci Sequence up to 5 terms:\n0 1 1 2 3 \n"},
		{"1\n", "Enter the number of terms: Fibonacci Sequence up to 1 terms:\n0 \n"},
		{"11", "Enter the number of terms: Fibonacci Sequence up to 11 terms:\n0 1 1 2 3 5 8 13 21 34 55 \n"},
		{"  7  trailing", "Enter the number of terms: Fibonacci Sequence up to 7 terms:\n0 1 1 2 3 5 8 \n"},
		{"0\n", "Enter the number of terms: Please enter a positive integer.\n"},
		{"-3\n", "Enter the number of terms: Please enter a positive integer.\n"},
	}
	for _, tt := range tests {
		got, err := runShell(t, tt.input)
		assert.Equal(t, nil, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestShellIsDeterministic(t *testing.T) {
	first, err := runShell(t, "15\n")
	assert.Equal(t, nil, err)
	second, err := runShell(t, "15\n")
	assert.Equal(t, nil, err)
	assert.Equal(t, first, second)
}

func TestShellRejectsNonNumericInput(t *testing.T) {
	for _, input := range []string{"abc\n", ""} {
		got, err := runShell(t, input)
		assert.NotEqual(t, nil, err, input)
		assert.T(t, strings.HasPrefix(err.Error(), "reading number of terms: "), err)
		assert.Equal(t, prompt, got)
	}
}

func TestShellLogsTermCount(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := &Shell{
		In:       strings.NewReader("3"),
		Out:      &bytes.Buffer{},
		Generate: fibonacci.Iterative,
		Log:      log,
	}
	assert.Equal(t, nil, s.Run())

	entry := hook.LastEntry()
	assert.NotEqual(t, (*logrus.Entry)(nil), entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 3, entry.Data["terms"])
}

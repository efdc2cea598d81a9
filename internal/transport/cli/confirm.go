package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinConfirmer asks yes/no questions on the terminal. It implements
// contracts.Confirmer.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer creates a confirmer reading answers from in.
func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt and reads one line. Only an explicit yes counts;
// anything else, including a read failure, declines.
func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [s/N]: ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package interact asks the user simple questions on a terminal.
package interact

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/mattn/go-isatty"
)

// Prompter writes questions to Out and reads the answers from In.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes "label: " and returns the next line of input without its
// line ending. An empty answer is returned as the empty string; reaching
// the end of input before any answer is an error.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", errors.Trace(err)
	}
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", errors.Errorf("no answer given for %q", label)
		}
	} else if err != nil {
		return "", errors.Annotatef(err, "reading answer for %q", label)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Interactive reports whether r is a terminal.
func Interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

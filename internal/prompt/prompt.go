// Package prompt asks the user for parameter values that were not given as flags.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// Prompter reads answers from the user.
type Prompter interface {
	// Input asks for a non-empty string.
	Input(title string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
}

// New returns a form prompter when in and out are both terminals, and a line
// prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// FormPrompter prompts with huh fields.
type FormPrompter struct{}

// Input implements Prompter.
func (p *FormPrompter) Input(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", formError(err)
	}
	return strings.TrimSpace(value), nil
}

// Confirm implements Prompter.
func (p *FormPrompter) Confirm(title string, def bool) (bool, error) {
	value := def
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return false, formError(err)
	}
	return value, nil
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return oerrors.ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// LinePrompter reads one answer per line. Used when stdin is not a terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over plain reader and writer.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Input implements Prompter. Empty answers are asked again; end of input aborts.
func (p *LinePrompter) Input(title string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", title)
		line, err := p.readLine()
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", fmt.Errorf("%w: no answer for %q", oerrors.ErrAborted, title)
		}
	}
}

// Confirm implements Prompter. An empty answer or end of input selects def.
func (p *LinePrompter) Confirm(title string, def bool) (bool, error) {
	choices := "y/N"
	if def {
		choices = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", title, choices)
		line, err := p.readLine()
		if line == "" {
			return def, nil
		}
		if v, ok := parseBool(line); ok {
			return v, nil
		}
		if err != nil {
			return def, nil
		}
		fmt.Fprintln(p.out, "Error: invalid input")
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}

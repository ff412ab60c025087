package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Terminal implements the interface.
var _ driven.Prompter = (*Terminal)(nil)

var (
	// ErrDisabled is returned when asked to prompt with domain.PromptDisabled.
	ErrDisabled = errors.New("prompting is disabled")

	// ErrNoTerminal indicates there is no terminal to prompt on.
	ErrNoTerminal = errors.New("no terminal available for prompting")
)

// ttyPath is the controlling terminal on unix systems.
const ttyPath = "/dev/tty"

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var readPassword = func(file *os.File) ([]byte, error) {
	return term.ReadPassword(int(file.Fd()))
}

// Terminal asks on a terminal, echoing visible input and masking hidden input.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminal creates a prompter reading from in and writing questions to out.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// OpenTerminal opens the controlling terminal, falling back to stdin and
// stderr when stdin is itself a terminal. The returned closer releases the
// terminal.
func OpenTerminal() (*Terminal, io.Closer, error) {
	if tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0); err == nil {
		return NewTerminal(tty, tty), tty, nil
	}
	if IsTerminal(os.Stdin) {
		return NewTerminal(os.Stdin, os.Stderr), io.NopCloser(os.Stdin), nil
	}
	return nil, nil, ErrNoTerminal
}

// Ask prints message and reads one line. Hidden input is masked when the
// input is a terminal.
func (t *Terminal) Ask(message string, opts domain.PromptOptions) (string, error) {
	if opts.Mode == domain.PromptDisabled {
		return "", ErrDisabled
	}
	if _, err := fmt.Fprint(t.out, message); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	if opts.Mode == domain.PromptHidden && IsTerminal(t.in) {
		secret, err := readPassword(t.in)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("reading hidden input: %w", err)
		}
		return string(secret), nil
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

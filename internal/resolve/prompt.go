package resolve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes prompt without a newline and returns the next input line.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Choose asks until the answer is a number between 0 and n. It returns the
// zero-based index of the selection, or ErrSelectionCancelled for "0".
func (p *Prompter) Choose(prompt string, n int) (int, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSelectionCancelled, err)
		}

		if !isNumeric(answer) {
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		if choice == 0 {
			return 0, ErrSelectionCancelled
		}
		if choice <= n {
			return choice - 1, nil
		}
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

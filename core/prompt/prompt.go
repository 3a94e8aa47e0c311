// Package prompt provides blocking, validating line-input primitives for
// the interactive calculator. Every validator loops until it gets an
// acceptable answer; only a closed input stream ends a prompt early.
package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"fundraiser/internal/errors"
	"fundraiser/internal/logging"
)

// Messages printed when an answer is rejected.
const (
	BlankMessage = "Sorry, this can't be blank."
	YesNoMessage = "Please enter yes (y) or no (n)."
	EscapePrefix = `\`
)

// Prompter reads answers from in and writes questions and errors to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Println writes a message line
func (p *Prompter) Println(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Ask prints question and returns the next line without its terminator.
// A closed input stream returns an ABORTED error.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.IO("failed to read answer", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", errors.Aborted(err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NotBlank asks until the answer is non-empty. The text is returned verbatim.
func (p *Prompter) NotBlank(question string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.reject(errors.New(errors.TypeBlankInput, BlankMessage))
	}
}

// YesNo asks until the answer is yes/y or no/n, in any case.
func (p *Prompter) YesNo(question string) (bool, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return false, err
		}
		yes, err := ParseYesNo(answer)
		if err == nil {
			return yes, nil
		}
		p.reject(err)
	}
}

// ParseYesNo maps yes/y to true and no/n to false.
func ParseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, errors.New(errors.TypeInvalidYesNo, YesNoMessage)
	}
}

// Entry is one answer to a list prompt. Done is set when the user typed
// the done keyword rather than a value.
type Entry struct {
	Text string
	Done bool
}

// Entry asks for a non-blank list value. Typing doneKeyword ends the list.
// A leading backslash escapes a literal value, so a product really called
// "xxx" is entered as `\xxx`.
func (p *Prompter) Entry(question, doneKeyword string) (Entry, error) {
	for {
		answer, err := p.NotBlank(question)
		if err != nil {
			return Entry{}, err
		}
		if answer == doneKeyword {
			return Entry{Done: true}, nil
		}
		if strings.HasPrefix(answer, EscapePrefix) {
			answer = strings.TrimPrefix(answer, EscapePrefix)
			if answer == "" {
				p.reject(errors.New(errors.TypeBlankInput, BlankMessage))
				continue
			}
		}
		return Entry{Text: answer}, nil
	}
}

// reject prints the user-facing message of a validation error.
func (p *Prompter) reject(err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		fmt.Fprintln(p.out, err.Error())
		return
	}
	logging.Debug("answer rejected", zap.String("type", string(e.Type)))
	fmt.Fprintln(p.out, e.Message)
}

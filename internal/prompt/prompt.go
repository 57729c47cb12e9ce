// Package prompt reads an NFA from a line oriented dialogue:
//
//	sigma:ab
//	state_from state_to letter(or smth else for end):0 1 a
//	state_from state_to letter(or smth else for end):1 1 eps
//	state_from state_to letter(or smth else for end):end
//	start_state: 0
//	terminal_states: 1
//
// The transition list ends at the first line that is not three fields with
// two integer states.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/geange/fa"
)

const (
	sigmaPrompt      = "sigma:"
	transitionPrompt = "state_from state_to letter(or smth else for end):"
	startPrompt      = "start_state: "
	terminalsPrompt  = "terminal_states: "

	// EpsilonWord is the letter that stands for an epsilon move.
	EpsilonWord = "eps"
)

var ErrUnexpectedEOF = errors.New("prompt: unexpected end of input")

// Reader asks for the parts of an automaton on out and reads the answers from in.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
	line    int
}

// NewReader returns a Reader; out may be nil to suppress the prompts.
func NewReader(in io.Reader, out io.Writer) *Reader {
	if out == nil {
		out = io.Discard
	}
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

func (r *Reader) ask(prompt string) (string, bool, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", false, err
	}
	if !r.scanner.Scan() {
		return "", false, r.scanner.Err()
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), true, nil
}

// ReadNFA runs the whole dialogue.
func (r *Reader) ReadNFA() (*fa.NFA, error) {
	sigma, ok, err := r.ask(sigmaPrompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("sigma: %w", ErrUnexpectedEOF)
	}
	n := fa.NewNFA(fa.AlphabetOf(sigma))

	for {
		line, ok, err := r.ask(transitionPrompt)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("transitions: %w", ErrUnexpectedEOF)
		}
		from, to, symbol, ok := parseTransition(line)
		if !ok {
			break
		}
		if err := n.AddTransition(from, to, symbol); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
	}

	line, ok, err := r.ask(startPrompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("start state: %w", ErrUnexpectedEOF)
	}
	start, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: start state %q: %w", r.line, line, err)
	}
	n.SetStartState(start)

	line, ok, err = r.ask(terminalsPrompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		// no terminal states line: accept nothing
		return n, nil
	}
	for _, field := range strings.Fields(line) {
		s, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: terminal state %q: %w", r.line, field, err)
		}
		n.AddTerminalState(s)
	}
	return n, nil
}

func parseTransition(line string) (from, to int, symbol fa.Symbol, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, false
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, false
	}
	to, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, false
	}
	if fields[2] == EpsilonWord {
		return from, to, fa.Epsilon, true
	}
	r, size := utf8.DecodeRuneInString(fields[2])
	if size != len(fields[2]) {
		return 0, 0, 0, false
	}
	return from, to, fa.Symbol(r), true
}

package fa

import (
	"fmt"
	"slices"
	"strings"
)

// Symbol is a single input letter. Real symbols are non-negative runes.
type Symbol rune

// Epsilon labels a transition that consumes no input. It is never a member of
// an Alphabet and never a valid letter of an input word.
const Epsilon = Symbol(-1)

func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

func (s Symbol) String() string {
	if s == Epsilon {
		return "eps"
	}
	return string(rune(s))
}

// Alphabet is a finite, immutable set of symbols. The zero value is the empty alphabet.
type Alphabet struct {
	symbols []Symbol
}

// NewAlphabet returns the alphabet made of the given symbols. Duplicates are
// ignored; Epsilon is rejected with ErrInvalidSymbol.
func NewAlphabet(symbols ...Symbol) (Alphabet, error) {
	values := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s < 0 {
			return Alphabet{}, fmt.Errorf("alphabet member %v: %w", s, ErrInvalidSymbol)
		}
		values = append(values, s)
	}
	slices.Sort(values)
	return Alphabet{symbols: slices.Compact(values)}, nil
}

// AlphabetOf returns the alphabet made of the runes of s.
func AlphabetOf(s string) Alphabet {
	values := make([]Symbol, 0, len(s))
	for _, r := range s {
		values = append(values, Symbol(r))
	}
	slices.Sort(values)
	return Alphabet{symbols: slices.Compact(values)}
}

// Symbols returns the members in ascending order.
func (a Alphabet) Symbols() []Symbol {
	return slices.Clone(a.symbols)
}

func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Index returns the position of s among the sorted members, or -1.
func (a Alphabet) Index(s Symbol) int {
	i, ok := slices.BinarySearch(a.symbols, s)
	if !ok {
		return -1
	}
	return i
}

func (a Alphabet) Contains(s Symbol) bool {
	return a.Index(s) >= 0
}

func (a Alphabet) Equal(other Alphabet) bool {
	return slices.Equal(a.symbols, other.symbols)
}

func (a Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a.symbols {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Word converts s into a sequence of symbols.
func Word(s string) []Symbol {
	word := make([]Symbol, 0, len(s))
	for _, r := range s {
		word = append(word, Symbol(r))
	}
	return word
}

// TrimEpsilon drops Epsilon from word. A witness consisting of Epsilon alone
// becomes the empty word, which Accept can consume.
func TrimEpsilon(word []Symbol) []Symbol {
	out := make([]Symbol, 0, len(word))
	for _, s := range word {
		if s != Epsilon {
			out = append(out, s)
		}
	}
	return out
}

// FormatWord renders word with Symbol.String.
func FormatWord(word []Symbol) string {
	var sb strings.Builder
	for _, s := range word {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Command fa reads an NFA in the prompt format, converts it to a DFA and
// prints the result.
//
//	fa [-input file] [-format table|tikz|dot] [-minimize] [-compare file] [-run w1,w2] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/geange/fa"
	"github.com/geange/fa/internal/prompt"
	"github.com/geange/fa/render"
)

type config struct {
	input    string
	format   string
	minimize bool
	compare  string
	run      string
	verbose  bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("fa", flag.ContinueOnError)
	fs.StringVar(&cfg.input, "input", "", "read the automaton from file instead of stdin")
	fs.StringVar(&cfg.format, "format", "table", "output format: table, tikz or dot")
	fs.BoolVar(&cfg.minimize, "minimize", false, "complete and minimize the DFA")
	fs.StringVar(&cfg.compare, "compare", "", "compare the language with the automaton in file")
	fs.StringVar(&cfg.run, "run", "", "comma separated words to test against the DFA")
	fs.BoolVar(&cfg.verbose, "v", false, "log every conversion step")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch cfg.format {
	case "table", "tikz", "dot":
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fa: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config, stdin io.Reader, stdout io.Writer) error {
	n, err := readNFA(cfg.input, stdin, stdout)
	if err != nil {
		return err
	}
	d, err := convert(cfg, n)
	if err != nil {
		return err
	}

	if cfg.compare != "" {
		return compare(cfg, d, stdout)
	}
	if cfg.run != "" {
		return runWords(d, strings.Split(cfg.run, ","), stdout)
	}

	switch cfg.format {
	case "tikz":
		_, err = fmt.Fprintln(stdout, render.TikZ(d))
	case "dot":
		_, err = io.WriteString(stdout, render.Dot(d))
	default:
		err = render.Table(stdout, d)
	}
	return err
}

// readNFA prompts on stdout only when reading interactively from stdin.
func readNFA(path string, stdin io.Reader, stdout io.Writer) (*fa.NFA, error) {
	if path == "" {
		return prompt.NewReader(stdin, stdout).ReadNFA()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := prompt.NewReader(f, nil).ReadNFA()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func convert(cfg *config, n *fa.NFA) (*fa.DFA, error) {
	d, err := fa.FromNFA(n)
	if err != nil {
		return nil, err
	}
	d = d.Renumbered()
	if cfg.verbose {
		log.Printf("subset construction: %d NFA states -> %d DFA states", n.NumStates(), d.NumStates())
	}
	if !cfg.minimize {
		return d, nil
	}

	full, err := d.CompletedToFull()
	if err != nil {
		return nil, err
	}
	m, err := full.Minimized()
	if err != nil {
		return nil, err
	}
	if cfg.verbose {
		log.Printf("minimization: %d states -> %d states", full.NumStates(), m.NumStates())
	}
	return m, nil
}

func compare(cfg *config, d *fa.DFA, stdout io.Writer) error {
	other, err := readNFA(cfg.compare, nil, nil)
	if err != nil {
		return err
	}
	od, err := fa.FromNFA(other)
	if err != nil {
		return err
	}
	word, found, err := d.FindNotEqWord(od)
	if err != nil {
		return err
	}
	if !found {
		_, err = fmt.Fprintln(stdout, "equal")
		return err
	}
	_, err = fmt.Fprintf(stdout, "differ on %q\n", fa.FormatWord(word))
	return err
}

func runWords(d *fa.DFA, words []string, stdout io.Writer) error {
	ra, err := fa.NewRunAutomaton(d)
	if err != nil {
		return err
	}
	for _, w := range words {
		verdict := "reject"
		if ra.Run(w) {
			verdict = "accept"
		}
		if _, err := fmt.Fprintf(stdout, "%q %s\n", w, verdict); err != nil {
			return err
		}
	}
	return nil
}

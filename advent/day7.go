package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/cespare/advent2020/bags"
	"github.com/cespare/wait"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

func init() {
	register("7", day7)
	register("7a", day7a)
	register("7b", day7b)
	register("7dump", day7dump)
	register("7repl", day7repl)
}

// day7 answers both parts, querying the graph concurrently.
func day7(r *run) error {
	g, err := r.bagGraph()
	if err != nil {
		return err
	}
	target := r.cfg.target
	var (
		wg         wait.Group
		containers int
		required   uint64
	)
	wg.Go(func(_ <-chan struct{}) error {
		containers = g.CountContainers(target)
		return nil
	})
	wg.Go(func(_ <-chan struct{}) error {
		var err error
		required, err = g.CountRequired(target)
		return err
	})
	if err := wg.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(r.stdout, "%s bags can contain %q\n", formatCount(uint64(containers)), target)
	fmt.Fprintf(r.stdout, "%q must contain %s bags\n", target, formatCount(required))
	return nil
}

func day7a(r *run) error {
	g, err := r.bagGraph()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.stdout, formatCount(uint64(g.CountContainers(r.cfg.target))))
	return nil
}

func day7b(r *run) error {
	g, err := r.bagGraph()
	if err != nil {
		return err
	}
	n, err := g.CountRequired(r.cfg.target)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.stdout, formatCount(n))
	return nil
}

// day7dump prints the graph as YAML: container -> child -> count.
func day7dump(r *run) error {
	g, err := r.bagGraph()
	if err != nil {
		return err
	}
	m := make(map[string]map[string]uint64)
	for _, rule := range g.Rules() {
		children := make(map[string]uint64, len(rule.Children))
		for _, c := range rule.Children {
			children[c.Name] = c.Count
		}
		m[rule.Container] = children
	}
	enc := yaml.NewEncoder(r.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// day7repl reads rules from a file and then answers queries about bag
// names typed at the prompt.
func day7repl(r *run) error {
	if len(r.args) == 0 && r.cfg.input == "" {
		return errors.New("7repl needs a rules file (argument or [day7] input)")
	}
	g, err := r.bagGraph()
	if err != nil {
		return err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "bag> ",
		HistoryFile: r.cfg.history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if err := answerQuery(r.stdout, g, line); err != nil {
			fmt.Fprintln(r.stdout, "error:", err)
		}
	}
}

// answerQuery prints both counts for the bag named by line.
// A blank line prints nothing.
func answerQuery(w io.Writer, g *bags.Graph, line string) error {
	name := strings.Join(strings.Fields(line), " ")
	if name == "" {
		return nil
	}
	name = strings.TrimSuffix(strings.TrimSuffix(name, " bags"), " bag")
	n, err := g.CountRequired(name)
	if err != nil {
		return err
	}
	ancestors := g.Ancestors(name)
	fmt.Fprintf(w, "%q must contain %s bags\n", name, formatCount(n))
	fmt.Fprintf(w, "%s bags can contain %q", formatCount(uint64(len(ancestors))), name)
	if len(ancestors) > 0 && len(ancestors) <= 10 {
		fmt.Fprintf(w, ": %s", strings.Join(ancestors, ", "))
	}
	fmt.Fprintln(w)
	return nil
}

// bagGraph reads and parses the rules named by the first argument, the
// configured input file, or stdin, in that order.
func (r *run) bagGraph() (*bags.Graph, error) {
	in := r.stdin
	name := "stdin"
	path := r.cfg.input
	if len(r.args) > 0 {
		path = r.args[0]
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
		name = path
	} else if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) {
		log.Println("Reading rules from the terminal; end with ^D.")
	}
	rules, err := bags.ReadRules(in)
	if err != nil {
		return nil, fmt.Errorf("error reading rules from %s: %w", name, err)
	}
	return bags.Build(rules), nil
}

func formatCount(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// Package bags parses luggage containment rules of the form
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//
// into a graph and answers questions about which bags hold which.
package bags

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Child is one clause of a rule: Count bags named Name.
type Child struct {
	Name  string
	Count uint64
}

// A Rule says what a Container bag must hold.
// A rule ending in "no other bags" has no Children.
type Rule struct {
	Container string
	Children  []Child
}

// String formats r using the same grammar ParseRule accepts.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Container)
	b.WriteString(" bags contain ")
	if len(r.Children) == 0 {
		b.WriteString("no other bags.")
		return b.String()
	}
	for i, c := range r.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d %s bag", c.Count, c.Name)
		if c.Count != 1 {
			b.WriteByte('s')
		}
	}
	b.WriteByte('.')
	return b.String()
}

// MalformedRuleError is returned when a line does not follow the rule
// grammar.
type MalformedRuleError struct {
	Line   int // 1-based; 0 if unknown
	Text   string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed rule %q: %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("malformed rule %q: %s", e.Text, e.Reason)
}

// ParseRule parses a single rule line.
func ParseRule(line string) (Rule, error) {
	var rule Rule
	fail := func(format string, args ...interface{}) (Rule, error) {
		return Rule{}, &MalformedRuleError{Text: line, Reason: fmt.Sprintf(format, args...)}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fail("missing container name")
	}
	rule.Container = fields[0] + " " + fields[1]
	if len(fields) < 3 || !isBagWord(fields[2]) {
		return fail(`missing "bags" after container name`)
	}
	if len(fields) < 4 || (fields[3] != "contain" && fields[3] != "contains") {
		return fail(`missing "contain"`)
	}
	rest := fields[4:]
	if len(rest) == 0 {
		return fail("no contents after %q", fields[3])
	}
	if strings.HasPrefix(rest[0], "no") {
		return rule, nil
	}
	for len(rest) > 0 {
		if trimPunct(rest[0]) == "" {
			rest = rest[1:]
			continue
		}
		n, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return fail("bad count %q", rest[0])
		}
		if len(rest) < 3 {
			return fail("missing bag name after count %d", n)
		}
		adj, color := trimPunct(rest[1]), trimPunct(rest[2])
		if adj == "" || color == "" {
			return fail("bad bag name %q", rest[1]+" "+rest[2])
		}
		rule.Children = append(rule.Children, Child{Name: adj + " " + color, Count: n})
		rest = rest[3:]
		if len(rest) > 0 && isBagWord(rest[0]) {
			rest = rest[1:]
		}
	}
	if len(rule.Children) == 0 {
		return fail("no contents after %q", fields[3])
	}
	return rule, nil
}

// ParseRules parses one rule per line. Blank lines are ignored.
// The first malformed line aborts parsing.
func ParseRules(lines []string) ([]Rule, error) {
	var rules []Rule
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rule, err := ParseRule(line)
		if err != nil {
			if me, ok := err.(*MalformedRuleError); ok {
				me.Line = i + 1
			}
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ReadRules reads and parses rules from r, one per line.
func ReadRules(r io.Reader) ([]Rule, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseRules(lines)
}

func isBagWord(s string) bool {
	s = trimPunct(s)
	return s == "bag" || s == "bags"
}

func trimPunct(s string) string {
	return strings.TrimRight(s, ",.")
}

package bags

import (
	"errors"
	"math/bits"
	"strings"
)

// ErrOverflow is returned by CountRequired when the number of bags does
// not fit in a uint64.
var ErrOverflow = errors.New("bags: bag count overflows uint64")

// A CycleError reports a bag that (transitively) contains itself.
// Path starts and ends with the same bag.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "bags: containment cycle: " + strings.Join(e.Path, " -> ")
}

// CountRequired returns how many bags a single start bag must hold,
// counting nested bags as many times as they are required. A bag with
// no rule, or unknown to g entirely, holds nothing.
//
// If a bag reachable from start contains itself the count is infinite
// and CountRequired returns a *CycleError.
func (g *Graph) CountRequired(start string) (uint64, error) {
	total, err := g.totalBags(start)
	if err != nil {
		return 0, err
	}
	return total - 1, nil
}

const (
	unvisited = iota
	inProgress
	finished
)

// countFrame is one bag on the totalBags work stack. sum accumulates
// the bag itself plus the children summed so far; next indexes the
// first child not yet added.
type countFrame struct {
	name     string
	children []Child
	next     int
	sum      uint64
}

// totalBags returns 1 (the start bag) plus everything inside it.
// Rather than recursing, it walks the graph in post-order with an
// explicit stack so that depth is bounded by memory, not goroutine
// stack size. Subtree totals are memoized for the duration of the call.
func (g *Graph) totalBags(start string) (uint64, error) {
	state := map[string]int{start: inProgress}
	totals := make(map[string]uint64)
	stack := []countFrame{{name: start, children: g.Children(start), sum: 1}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.children) {
			state[f.name] = finished
			totals[f.name] = f.sum
			stack = stack[:len(stack)-1]
			continue
		}
		c := f.children[f.next]
		switch state[c.Name] {
		case inProgress:
			return 0, &CycleError{Path: cyclePath(stack, c.Name)}
		case unvisited:
			state[c.Name] = inProgress
			stack = append(stack, countFrame{name: c.Name, children: g.Children(c.Name), sum: 1})
			continue
		}
		hi, n := bits.Mul64(c.Count, totals[c.Name])
		if hi != 0 {
			return 0, ErrOverflow
		}
		sum, carry := bits.Add64(f.sum, n, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		f.sum = sum
		f.next++
	}
	return totals[start], nil
}

func cyclePath(stack []countFrame, name string) []string {
	i := len(stack) - 1
	for i > 0 && stack[i].name != name {
		i--
	}
	path := make([]string, 0, len(stack)-i+1)
	for _, f := range stack[i:] {
		path = append(path, f.name)
	}
	return append(path, name)
}

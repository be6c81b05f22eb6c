package bags

import "sort"

// A Graph holds containment rules in two indexes: container -> child ->
// count, and child -> containers. It is not modified after Build, so
// any number of goroutines may query it concurrently.
type Graph struct {
	forward map[string]map[string]uint64
	reverse map[string]map[string]struct{}
}

// Build constructs a Graph from rules. The order of rules does not
// matter, except that a later rule for the same container replaces an
// earlier one. Within a rule, the last clause for a child wins, and
// children with a count of zero are dropped.
func Build(rules []Rule) *Graph {
	g := &Graph{
		forward: make(map[string]map[string]uint64, len(rules)),
		reverse: make(map[string]map[string]struct{}),
	}
	for _, rule := range rules {
		children := make(map[string]uint64, len(rule.Children))
		for _, c := range rule.Children {
			if c.Count == 0 {
				delete(children, c.Name)
				continue
			}
			children[c.Name] = c.Count
		}
		g.forward[rule.Container] = children
	}
	// Invert only after all rules are in so that replaced edge sets
	// leave nothing behind.
	for container, children := range g.forward {
		for child := range children {
			containers, ok := g.reverse[child]
			if !ok {
				containers = make(map[string]struct{})
				g.reverse[child] = containers
			}
			containers[container] = struct{}{}
		}
	}
	return g
}

// Children returns the bags directly inside name, sorted by name.
func (g *Graph) Children(name string) []Child {
	m := g.forward[name]
	if len(m) == 0 {
		return nil
	}
	children := make([]Child, 0, len(m))
	for child, n := range m {
		children = append(children, Child{Name: child, Count: n})
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	return children
}

// Containers returns the bags that directly hold name, sorted.
func (g *Graph) Containers(name string) []string {
	return sortedKeys(g.reverse[name])
}

// Nodes returns every bag named in the graph, as a container or a
// child, sorted.
func (g *Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g.forward)+len(g.reverse))
	for name := range g.forward {
		seen[name] = struct{}{}
	}
	for name := range g.reverse {
		seen[name] = struct{}{}
	}
	return sortedKeys(seen)
}

// Rules returns one rule per container, sorted by container name.
func (g *Graph) Rules() []Rule {
	names := make([]string, 0, len(g.forward))
	for name := range g.forward {
		names = append(names, name)
	}
	sort.Strings(names)
	rules := make([]Rule, len(names))
	for i, name := range names {
		rules[i] = Rule{Container: name, Children: g.Children(name)}
	}
	return rules
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

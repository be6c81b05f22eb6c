package bags

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

var sample1 = []string{
	"light red bags contain 1 bright white bag, 2 muted yellow bags.",
	"dark orange bags contain 3 bright white bags, 4 muted yellow bags.",
	"bright white bags contain 1 shiny gold bag.",
	"muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.",
	"shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.",
	"dark olive bags contain 3 faded blue bags, 4 dotted black bags.",
	"vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.",
	"faded blue bags contain no other bags.",
	"dotted black bags contain no other bags.",
}

var sample2 = []string{
	"shiny gold bags contain 2 dark red bags.",
	"dark red bags contain 2 dark orange bags.",
	"dark orange bags contain 2 dark yellow bags.",
	"dark yellow bags contain 2 dark green bags.",
	"dark green bags contain 2 dark blue bags.",
	"dark blue bags contain 2 dark violet bags.",
	"dark violet bags contain no other bags.",
}

func mustBuild(t testing.TB, lines []string) *Graph {
	t.Helper()
	rules, err := ParseRules(lines)
	if err != nil {
		t.Fatal(err)
	}
	return Build(rules)
}

func TestBuild(t *testing.T) {
	g := mustBuild(t, sample1)
	for _, tt := range []struct {
		name       string
		children   []Child
		containers []string
	}{
		{"light red", []Child{{"bright white", 1}, {"muted yellow", 2}}, nil},
		{"bright white", []Child{{"shiny gold", 1}}, []string{"dark orange", "light red"}},
		{"shiny gold", []Child{{"dark olive", 1}, {"vibrant plum", 2}}, []string{"bright white", "muted yellow"}},
		{"faded blue", nil, []string{"dark olive", "muted yellow", "vibrant plum"}},
		{"no such", nil, nil},
	} {
		if got := g.Children(tt.name); !reflect.DeepEqual(got, tt.children) {
			t.Errorf("Children(%q): got %v; want %v", tt.name, got, tt.children)
		}
		if got := g.Containers(tt.name); !reflect.DeepEqual(got, tt.containers) {
			t.Errorf("Containers(%q): got %v; want %v", tt.name, got, tt.containers)
		}
	}
	if got, want := len(g.Nodes()), 9; got != want {
		t.Errorf("got %d nodes; want %d", got, want)
	}
}

// The two indexes must describe the same set of edges.
func TestBuildIndexesAgree(t *testing.T) {
	g := mustBuild(t, append(append([]string(nil), sample1...), sample2...))
	for container, children := range g.forward {
		for child := range children {
			if _, ok := g.reverse[child][container]; !ok {
				t.Errorf("edge %q -> %q missing from reverse index", container, child)
			}
		}
	}
	for child, containers := range g.reverse {
		for container := range containers {
			if _, ok := g.forward[container][child]; !ok {
				t.Errorf("reverse edge %q <- %q missing from forward index", child, container)
			}
		}
	}
}

func TestBuildDuplicateContainerReplaces(t *testing.T) {
	g := mustBuild(t, []string{
		"shiny gold bags contain 2 dark red bags, 1 dull tan bag.",
		"shiny gold bags contain 3 wavy cyan bags.",
	})
	if got, want := g.Children("shiny gold"), []Child{{"wavy cyan", 3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got children %v; want %v", got, want)
	}
	if got := g.Containers("dark red"); got != nil {
		t.Errorf("replaced edge left containers %v", got)
	}
}

func TestBuildZeroCount(t *testing.T) {
	g := Build([]Rule{{"shiny gold", []Child{{"dark red", 0}}}})
	if got := g.Children("shiny gold"); got != nil {
		t.Errorf("got children %v; want none", got)
	}
	if got := g.Containers("dark red"); got != nil {
		t.Errorf("got containers %v; want none", got)
	}
	n, err := g.CountRequired("shiny gold")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("got %d; want 0", n)
	}
}

func TestBuildOrderIndependent(t *testing.T) {
	want := mustBuild(t, sample1)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		lines := append([]string(nil), sample1...)
		rng.Shuffle(len(lines), func(a, b int) { lines[a], lines[b] = lines[b], lines[a] })
		got := mustBuild(t, lines)
		if diff := pretty.Diff(got.forward, want.forward); len(diff) > 0 {
			t.Fatalf("forward differs for order %q:\n%s", lines, strings.Join(diff, "\n"))
		}
		if diff := pretty.Diff(got.reverse, want.reverse); len(diff) > 0 {
			t.Fatalf("reverse differs for order %q:\n%s", lines, strings.Join(diff, "\n"))
		}
		for _, name := range want.Nodes() {
			n0, err0 := got.CountRequired(name)
			n1, err1 := want.CountRequired(name)
			if n0 != n1 || err0 != err1 {
				t.Errorf("CountRequired(%q): got (%d, %v); want (%d, %v)", name, n0, err0, n1, err1)
			}
			if c0, c1 := got.CountContainers(name), want.CountContainers(name); c0 != c1 {
				t.Errorf("CountContainers(%q): got %d; want %d", name, c0, c1)
			}
		}
	}
}

func TestRules(t *testing.T) {
	g := mustBuild(t, sample1)
	rules := g.Rules()
	if len(rules) != len(sample1) {
		t.Fatalf("got %d rules; want %d", len(rules), len(sample1))
	}
	g1 := Build(rules)
	if diff := pretty.Diff(g1, g); len(diff) > 0 {
		t.Errorf("rebuilding from Rules changed graph:\n%s", strings.Join(diff, "\n"))
	}
	if got, want := rules[0].String(), "bright white bags contain 1 shiny gold bag."; got != want {
		t.Errorf("got first rule %q; want %q", got, want)
	}
}

func TestAccessorsDoNotAlias(t *testing.T) {
	g := mustBuild(t, sample1)
	children := g.Children("shiny gold")
	children[0].Count = 100
	if got := g.Children("shiny gold")[0].Count; got != 1 {
		t.Errorf("modifying Children result changed graph: count is now %d", got)
	}
	containers := g.Containers("shiny gold")
	containers[0] = "mangled"
	if got := g.Containers("shiny gold")[0]; got != "bright white" {
		t.Errorf("modifying Containers result changed graph: got %q", got)
	}
}

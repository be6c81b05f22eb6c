package bags

// Ancestors returns, sorted, every bag that can eventually contain
// target. The target itself is never included, even if it is part of a
// cycle.
func (g *Graph) Ancestors(target string) []string {
	visited := g.visitContainers(target)
	delete(visited, target)
	return sortedKeys(visited)
}

// CountContainers returns the number of bags that can eventually
// contain target.
func (g *Graph) CountContainers(target string) int {
	return len(g.visitContainers(target)) - 1
}

// visitContainers returns target and all of its transitive containers.
// A bag is expanded at most once, so cycles terminate.
func (g *Graph) visitContainers(target string) map[string]struct{} {
	visited := make(map[string]struct{})
	stack := []string{target}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}
		for container := range g.reverse[name] {
			if _, ok := visited[container]; !ok {
				stack = append(stack, container)
			}
		}
	}
	return visited
}

package graph

// Graph is the set of models of one document, indexed by name and kept in
// definition order.
type Graph struct {
	models []*Model
	byName map[string]*Model
}

func newGraph() *Graph {
	return &Graph{byName: make(map[string]*Model)}
}

func (g *Graph) add(m *Model) {
	g.models = append(g.models, m)
	g.byName[m.Name] = m
}

// Models returns the models in definition order.
func (g *Graph) Models() []*Model {
	return g.models
}

func (g *Graph) Get(name string) (*Model, bool) {
	m, ok := g.byName[name]
	return m, ok
}

func (g *Graph) Len() int {
	return len(g.models)
}

// Remove drops a model from the graph. Links held by other models are left
// in place; lookups by name no longer find it.
func (g *Graph) Remove(name string) bool {
	if _, ok := g.byName[name]; !ok {
		return false
	}
	delete(g.byName, name)
	for i, m := range g.models {
		if m.Name == name {
			g.models = append(g.models[:i], g.models[i+1:]...)
			break
		}
	}
	return true
}

// Closure returns every model reachable from seeds by following
// DirectDependencies. Names that are not in the graph are skipped, and each
// model is visited at most once, so cyclic graphs terminate.
func (g *Graph) Closure(seeds ...string) map[string]bool {
	visited := make(map[string]bool)
	stack := make([]string, 0, len(seeds))
	for i := len(seeds) - 1; i >= 0; i-- {
		stack = append(stack, seeds[i])
	}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[name] {
			continue
		}
		m, ok := g.byName[name]
		if !ok {
			continue
		}
		visited[name] = true

		for _, dep := range m.DirectDependencies {
			if !visited[dep] {
				stack = append(stack, dep)
			}
		}
	}

	return visited
}

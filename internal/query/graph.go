package query

// DependencyType tags why one query depends on another.
type DependencyType uint8

const (
	// Direct: the dependent query called the dependency directly, whether
	// that call was a fresh computation or a cache hit.
	Direct DependencyType = iota
	// Conditional: the dependent query might call the dependency depending
	// on some runtime condition; recorded explicitly by callers that branch
	// around a query call rather than always making it.
	Conditional
	// Invalidation: the dependent query should be dropped whenever the
	// dependency changes, without the dependent ever having called it
	// directly (e.g. a query over "all definitions in scope S" that should
	// also be invalidated when S's import edges change).
	Invalidation
)

// Dependency is one edge out of a query: it depends on Query, for Type's
// reason.
type Dependency struct {
	Query ErasedKey
	Type  DependencyType
}

// DependencyGraph tracks, for every query that has ever run, which other
// queries it depends on (forward edges) and which queries depend on it
// (reverse edges), so invalidation can walk the transitive closure of
// dependents without re-deriving it from the forward edges each time.
type DependencyGraph struct {
	dependencies map[ErasedKey][]Dependency
	dependents   map[ErasedKey][]ErasedKey
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependencies: make(map[ErasedKey][]Dependency),
		dependents:   make(map[ErasedKey][]ErasedKey),
	}
}

// AddDependency records that query depends on dep.
func (g *DependencyGraph) AddDependency(query ErasedKey, dep Dependency) {
	g.dependencies[query] = append(g.dependencies[query], dep)
	g.dependents[dep.Query] = append(g.dependents[dep.Query], query)
}

// Dependencies returns query's direct dependencies.
func (g *DependencyGraph) Dependencies(query ErasedKey) []Dependency {
	return g.dependencies[query]
}

// InvalidationTargets returns every query transitively dependent on query
// (query itself is not included), via reverse edges.
func (g *DependencyGraph) InvalidationTargets(query ErasedKey) []ErasedKey {
	var targets []ErasedKey
	visited := make(map[ErasedKey]bool)
	g.collectInvalidationTargets(query, &targets, visited)
	return targets
}

func (g *DependencyGraph) collectInvalidationTargets(query ErasedKey, targets *[]ErasedKey, visited map[ErasedKey]bool) {
	if visited[query] {
		return
	}
	visited[query] = true

	for _, dependent := range g.dependents[query] {
		*targets = append(*targets, dependent)
		g.collectInvalidationTargets(dependent, targets, visited)
	}
}

// ClearDependencies removes query's forward edges (and the matching reverse
// edges), without touching anything that depends on query.
func (g *DependencyGraph) ClearDependencies(query ErasedKey) {
	deps, ok := g.dependencies[query]
	if !ok {
		return
	}
	delete(g.dependencies, query)

	for _, dep := range deps {
		rev := g.dependents[dep.Query]
		out := rev[:0]
		for _, q := range rev {
			if q != query {
				out = append(out, q)
			}
		}
		g.dependents[dep.Query] = out
	}
}

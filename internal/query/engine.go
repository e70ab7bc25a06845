package query

import "fmt"

// CycleError reports that a query was asked to execute while it was already
// on the active call stack.
type CycleError struct {
	Kind QueryKind
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("query: cycle detected executing %s (kind %d)", e.Name, e.Kind)
}

// Engine is the single-threaded query cache plus dependency graph. One
// Engine is owned by one top-level compilation and dropped as a unit with
// it, the same as the HIR map and scope store it sits above.
type Engine struct {
	cache map[ErasedKey]any
	graph *DependencyGraph
	stack []ErasedKey
}

// NewEngine creates an empty Engine.
func NewEngine() *Engine {
	return &Engine{
		cache: make(map[ErasedKey]any),
		graph: NewDependencyGraph(),
	}
}

func (e *Engine) onStack(ek ErasedKey) bool {
	for _, s := range e.stack {
		if s == ek {
			return true
		}
	}
	return false
}

// recordCaller records a Direct dependency from the currently executing
// query (the top of the stack, if any) onto ek. Called on every lookup of
// ek, whether it turns out to be a cache hit or a fresh computation —
// dependency edges describe what a query's body touched, not just what it
// had to compute from scratch.
func (e *Engine) recordCaller(ek ErasedKey) {
	if len(e.stack) == 0 {
		return
	}
	parent := e.stack[len(e.stack)-1]
	if parent == ek {
		return
	}
	e.graph.AddDependency(parent, Dependency{Query: ek, Type: Direct})
}

// Query looks up (kind, key) in the cache, returning the cached value if
// present. On a miss it pushes (kind, key) onto the active stack, calls
// compute, pops, and caches the result before returning it. If (kind, key)
// is already on the active stack — compute transitively called Query on
// itself — it returns a CycleError instead of recursing forever.
//
// Every call, hit or miss, records a Direct dependency edge from whichever
// query is currently executing (if any) onto (kind, key).
func Query[K comparable, V any](e *Engine, kind QueryKind, name string, key K, compute func() (V, error)) (V, error) {
	var zero V
	ek := newErasedKey(kind, key)

	if e.onStack(ek) {
		return zero, &CycleError{Kind: kind, Name: name}
	}

	if cached, ok := e.cache[ek]; ok {
		e.recordCaller(ek)
		return cached.(V), nil
	}

	e.stack = append(e.stack, ek)
	result, err := compute()
	e.stack = e.stack[:len(e.stack)-1]
	if err != nil {
		return zero, err
	}

	e.recordCaller(ek)
	e.cache[ek] = result
	return result, nil
}

// DependOn records an explicit Conditional or Invalidation edge from
// (fromKind, fromKey) to (toKind, toKey), for callers that branch around a
// nested Query call (Conditional) or whose result should be dropped when
// some other key changes despite never calling it directly (Invalidation).
// Direct edges are recorded automatically by Query and never need this.
func DependOn[K1, K2 comparable](e *Engine, fromKind QueryKind, fromKey K1, toKind QueryKind, toKey K2, depType DependencyType) {
	from := newErasedKey(fromKind, fromKey)
	to := newErasedKey(toKind, toKey)
	e.graph.AddDependency(from, Dependency{Query: to, Type: depType})
}

// Invalidate drops the cached value for (kind, key) and every query
// transitively dependent on it, then clears the outgoing edges of
// everything it just dropped (their cached results no longer exist, so
// their recorded dependencies are stale).
func Invalidate[K comparable](e *Engine, kind QueryKind, key K) {
	ek := newErasedKey(kind, key)
	targets := e.graph.InvalidationTargets(ek)

	delete(e.cache, ek)
	for _, t := range targets {
		delete(e.cache, t)
	}

	e.graph.ClearDependencies(ek)
	for _, t := range targets {
		e.graph.ClearDependencies(t)
	}
}

// Len returns the number of cached query results, for diagnostics and
// tests.
func (e *Engine) Len() int {
	return len(e.cache)
}

// Clear drops every cached result and dependency edge.
func (e *Engine) Clear() {
	e.cache = make(map[ErasedKey]any)
	e.graph = NewDependencyGraph()
}

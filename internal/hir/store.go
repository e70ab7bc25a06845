package hir

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Store owns every interning arena plus the HirId-indexed HIR map. All
// Intern* operations are hash-consing: two structurally equal values
// (same Kind and same field contents) always return the same handle, which
// is how the lowerer gets "structurally equal sub-expressions share
// handles" for free instead of having to track sharing itself.
type Store struct {
	strings    []string
	stringByID map[string]Symbol

	exprs    []Expr
	exprByID map[string]ExprHandle

	patterns    []Pattern
	patternByID map[string]PatternHandle

	definitions    []Definition
	definitionByID map[string]DefinitionHandle

	params    []Param
	paramByID map[string]ParamHandle

	clauses    []Clause
	clauseByID map[string]ClauseHandle

	hirMap   map[HirId]HirMapping
	nextHir  HirId
	impls    map[string][]HirId
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		stringByID:     make(map[string]Symbol),
		exprByID:       make(map[string]ExprHandle),
		patternByID:    make(map[string]PatternHandle),
		definitionByID: make(map[string]DefinitionHandle),
		paramByID:      make(map[string]ParamHandle),
		clauseByID:     make(map[string]ClauseHandle),
		hirMap:         make(map[HirId]HirMapping),
		impls:          make(map[string][]HirId),
	}
}

// InternStr interns s, returning the same Symbol for equal strings.
func (s *Store) InternStr(str string) Symbol {
	if sym, ok := s.stringByID[str]; ok {
		return sym
	}
	s.strings = append(s.strings, str)
	sym := Symbol(len(s.strings))
	s.stringByID[str] = sym
	return sym
}

// Str returns the string behind sym.
func (s *Store) Str(sym Symbol) string {
	if !sym.IsValid() || int(sym) > len(s.strings) {
		return ""
	}
	return s.strings[sym-1]
}

func key(v any) string {
	b, err := msgpack.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("hir: failed to serialize intern key: %w", err))
	}
	return string(b)
}

// InternExpr interns e, returning its handle.
func (s *Store) InternExpr(e Expr) ExprHandle {
	k := key(e)
	if h, ok := s.exprByID[k]; ok {
		return h
	}
	s.exprs = append(s.exprs, e)
	h := ExprHandle(len(s.exprs))
	s.exprByID[k] = h
	return h
}

// Expr returns the Expr behind h.
func (s *Store) Expr(h ExprHandle) Expr {
	return s.exprs[h-1]
}

// InternPattern interns p, returning its handle.
func (s *Store) InternPattern(p Pattern) PatternHandle {
	k := key(p)
	if h, ok := s.patternByID[k]; ok {
		return h
	}
	s.patterns = append(s.patterns, p)
	h := PatternHandle(len(s.patterns))
	s.patternByID[k] = h
	return h
}

// Pattern returns the Pattern behind h.
func (s *Store) Pattern(h PatternHandle) Pattern {
	return s.patterns[h-1]
}

// InternDefinition interns d, returning its handle.
func (s *Store) InternDefinition(d Definition) DefinitionHandle {
	k := key(d)
	if h, ok := s.definitionByID[k]; ok {
		return h
	}
	s.definitions = append(s.definitions, d)
	h := DefinitionHandle(len(s.definitions))
	s.definitionByID[k] = h
	return h
}

// Definition returns the Definition behind h.
func (s *Store) Definition(h DefinitionHandle) Definition {
	return s.definitions[h-1]
}

// InternParam interns p, returning its handle.
func (s *Store) InternParam(p Param) ParamHandle {
	k := key(p)
	if h, ok := s.paramByID[k]; ok {
		return h
	}
	s.params = append(s.params, p)
	h := ParamHandle(len(s.params))
	s.paramByID[k] = h
	return h
}

// Param returns the Param behind h.
func (s *Store) Param(h ParamHandle) Param {
	return s.params[h-1]
}

// InternClause interns c, returning its handle.
func (s *Store) InternClause(c Clause) ClauseHandle {
	k := key(c)
	if h, ok := s.clauseByID[k]; ok {
		return h
	}
	s.clauses = append(s.clauses, c)
	h := ClauseHandle(len(s.clauses))
	s.clauseByID[k] = h
	return h
}

// Clause returns the Clause behind h.
func (s *Store) Clause(h ClauseHandle) Clause {
	return s.clauses[h-1]
}

// Put records a new HIR mapping and mints the HirId for it.
func (s *Store) Put(m HirMapping) HirId {
	s.nextHir++
	id := s.nextHir
	s.hirMap[id] = m
	return id
}

// Reserve mints a placeholder HirId with no mapping yet, for the
// "placeholder before body" pattern circular definitions need: a struct
// referencing itself can be given a HirId before its fields are lowered,
// then Update fills in the real mapping once lowering finishes.
func (s *Store) Reserve() HirId {
	s.nextHir++
	return s.nextHir
}

// Update overwrites the mapping for an existing HirId (including one
// returned by Reserve).
func (s *Store) Update(id HirId, m HirMapping) {
	s.hirMap[id] = m
}

// Get returns the mapping for id.
func (s *Store) Get(id HirId) (HirMapping, bool) {
	m, ok := s.hirMap[id]
	return m, ok
}

// fingerprintEntry is one HIR map slot in a Fingerprint snapshot: a plain,
// msgpack-serializable mirror of the (HirId, HirMapping) pair it captures.
type fingerprintEntry struct {
	ID      HirId
	Mapping HirMapping
}

// Fingerprint returns a deterministic byte encoding of every populated
// HirId's mapping, in HirId order (never map iteration order, which Go
// does not guarantee is stable run to run). Two Stores built by separately
// lowering the same item tree produce identical fingerprints exactly when
// lowering is idempotent: re-running it cannot add, remove, or mutate a
// mapping, only return the one already there.
func (s *Store) Fingerprint() ([]byte, error) {
	entries := make([]fingerprintEntry, 0, len(s.hirMap))
	for id := HirId(1); id <= s.nextHir; id++ {
		m, ok := s.hirMap[id]
		if !ok {
			continue
		}
		entries = append(entries, fingerprintEntry{ID: id, Mapping: m})
	}
	b, err := msgpack.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("hir: failed to fingerprint store: %w", err)
	}
	return b, nil
}

// PutImpl records that HirId id implements/witnesses the structural key
// described by e (used for impl lookup by structural shape rather than by
// name).
func (s *Store) PutImpl(e Expr, id HirId) {
	k := key(e)
	s.impls[k] = append(s.impls[k], id)
}

// GetImpl returns every HirId previously registered against e's structural
// shape via PutImpl.
func (s *Store) GetImpl(e Expr) []HirId {
	return s.impls[key(e)]
}

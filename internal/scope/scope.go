// Package scope is the Scope Store: a name-resolution tree of scopes, each
// holding an ordered item list, an import edge list, and a clause list. It
// sits between the AST Scanner (which populates it) and the Import
// Resolver / Lowerer (which query it).
package scope

import "flc/internal/hir"

// ID identifies a scope within a Store. 0 is the invalid sentinel; Store's
// own root scope is always ID 1.
type ID uint32

// NoID is the invalid/absent ScopeID (an Item with NoID has no nested
// scope of its own, e.g. a plain function).
const NoID ID = 0

// IsValid reports whether id refers to a real scope.
func (id ID) IsValid() bool { return id != NoID }

// Item is one named entry in a scope: a symbol bound to the HirId that
// names it, and optionally the ScopeID of the nested scope it owns (a
// module or struct has one; a function does not).
type Item struct {
	Symbol  hir.Symbol
	HirID   hir.HirId
	ScopeID ID
}

// ImportKind tags which fields of Import are meaningful.
type ImportKind uint8

const (
	InvalidImport ImportKind = iota
	// ImportAll: `use path::*` — every name in Scope becomes visible.
	ImportAll
	// ImportMulti: `use path::{a, b, c}` — only Names from Scope are visible.
	ImportMulti
	// ImportSingle: `use path::name` — Name from Scope is visible under
	// its own name.
	ImportSingle
	// ImportAlias: `use path::name as alias` — Original from Scope is
	// visible under Alias.
	ImportAlias
)

// Import is one resolved `use` edge recorded against the importing scope.
type Import struct {
	Kind     ImportKind
	Scope    ID
	Name     hir.Symbol
	Names    []hir.Symbol
	Alias    hir.Symbol
	Original hir.Symbol
}

// ClauseEntry is one clause attached to a scope: enough of the interned
// hir.Clause's identity (Symbol, HirID) to answer a name search without
// dereferencing Handle through the Hir store, the same way Item duplicates
// a HirId instead of requiring a lookup.
type ClauseEntry struct {
	Symbol hir.Symbol
	HirID  hir.HirId
	Handle hir.ClauseHandle
}

// Scope is one node in the Store's resolution tree.
type Scope struct {
	ID      ID
	Owner   hir.HirId
	Name    hir.Symbol // NoSymbol for an anonymous scope (the root)
	Parent  ID         // NoID for the root
	Ordered bool
	Items   []Item
	Imports []Import
	Clauses []ClauseEntry
}

// Error is the error type every Store mutator returns on failure.
type Error struct {
	Kind   ErrorKind
	Symbol hir.Symbol
	Scope  ID
}

// ErrorKind tags the shape of an Error.
type ErrorKind uint8

const (
	ErrDuplicateSymbol ErrorKind = iota
	ErrInvalidParentScope
)

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDuplicateSymbol:
		return "scope: duplicate symbol"
	default:
		return "scope: invalid parent scope"
	}
}

// Store owns every Scope in a compilation.
type Store struct {
	Root   ID
	scopes map[ID]*Scope
	nextID ID
}

// New creates a Store with an empty, anonymous root scope.
func New() *Store {
	s := &Store{scopes: make(map[ID]*Scope)}
	root, err := s.AddScope(hir.NoSymbol, NoID, false, hir.NoHirId)
	if err != nil {
		panic(err) // the root scope can never fail to register: no parent, no name
	}
	s.Root = root
	return s
}

// AddScope creates a new scope. If parent and name are both valid, the new
// scope is also registered as an Item in the parent (duplicate names in an
// unordered parent are rejected).
func (s *Store) AddScope(name hir.Symbol, parent ID, ordered bool, hirID hir.HirId) (ID, error) {
	s.nextID++
	id := s.nextID

	if parent.IsValid() && name.IsValid() {
		parentScope, ok := s.scopes[parent]
		if !ok {
			return 0, &Error{Kind: ErrInvalidParentScope, Scope: parent}
		}
		if !parentScope.Ordered {
			for _, item := range parentScope.Items {
				if item.Symbol == name {
					return 0, &Error{Kind: ErrDuplicateSymbol, Symbol: name}
				}
			}
		}
		parentScope.Items = append(parentScope.Items, Item{Symbol: name, HirID: hirID, ScopeID: id})
	}

	s.scopes[id] = &Scope{ID: id, Owner: hirID, Name: name, Parent: parent, Ordered: ordered}
	return id, nil
}

// AddItem registers item as a leaf (or pre-built) entry in scopeID.
func (s *Store) AddItem(item Item, scopeID ID) error {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return &Error{Kind: ErrInvalidParentScope, Scope: scopeID}
	}
	if !scope.Ordered {
		for _, existing := range scope.Items {
			if existing.Symbol == item.Symbol {
				return &Error{Kind: ErrDuplicateSymbol, Symbol: item.Symbol}
			}
		}
	}
	scope.Items = append(scope.Items, item)
	return nil
}

// AddClause attaches entry to scopeID. Later clauses shadow earlier ones
// with the same name (Resolve walks the list in reverse), matching Items'
// and Imports' declaration-order-then-reverse-search convention.
func (s *Store) AddClause(scopeID ID, entry ClauseEntry) error {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return &Error{Kind: ErrInvalidParentScope, Scope: scopeID}
	}
	scope.Clauses = append(scope.Clauses, entry)
	return nil
}

// AddImport attaches imp to scopeID. Later imports shadow earlier ones
// (Lookup walks the import list in reverse).
func (s *Store) AddImport(scopeID ID, imp Import) error {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return &Error{Kind: ErrInvalidParentScope, Scope: scopeID}
	}
	scope.Imports = append(scope.Imports, imp)
	return nil
}

// Lookup searches only scopeID's own items and imports (no parent walk).
// Items are checked in reverse declaration order, then imports in reverse
// declaration order, so the most recent declaration/import wins.
func (s *Store) Lookup(name hir.Symbol, scopeID ID) (Item, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return Item{}, false
	}
	for i := len(scope.Items) - 1; i >= 0; i-- {
		if scope.Items[i].Symbol == name {
			return scope.Items[i], true
		}
	}
	for i := len(scope.Imports) - 1; i >= 0; i-- {
		imp := scope.Imports[i]
		switch imp.Kind {
		case ImportAll:
			if item, ok := s.Lookup(name, imp.Scope); ok {
				return item, true
			}
		case ImportMulti:
			for j := len(imp.Names) - 1; j >= 0; j-- {
				if imp.Names[j] == name {
					if item, ok := s.Lookup(name, imp.Scope); ok {
						return item, true
					}
				}
			}
		case ImportSingle:
			if imp.Name == name {
				if item, ok := s.Lookup(name, imp.Scope); ok {
					return item, true
				}
			}
		case ImportAlias:
			if imp.Alias == name {
				if item, ok := s.Lookup(imp.Original, imp.Scope); ok {
					return item, true
				}
			}
		}
	}
	return Item{}, false
}

// Resolve searches scopeID's own items and imports (via Lookup), then its
// clause list, then walks up through parent scopes until name is found or
// the root is exhausted. Separating Lookup (local + imports) from Resolve
// (adds clauses and the parent chain) lets path resolution use Lookup
// directly and avoid unintended capture by an enclosing function's generic
// clauses or locals.
func (s *Store) Resolve(name hir.Symbol, scopeID ID) (Item, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return Item{}, false
	}
	if item, ok := s.Lookup(name, scopeID); ok {
		return item, true
	}
	for i := len(scope.Clauses) - 1; i >= 0; i-- {
		if scope.Clauses[i].Symbol == name {
			return Item{Symbol: name, HirID: scope.Clauses[i].HirID}, true
		}
	}
	if scope.Parent.IsValid() {
		return s.Resolve(name, scope.Parent)
	}
	return Item{}, false
}

// LookupPath walks a dotted path of names, moving into each intermediate
// item's own scope, and returns the final segment's Item.
func (s *Store) LookupPath(path []hir.Symbol, scopeID ID) (Item, bool) {
	current := scopeID
	var last Item
	for i, name := range path {
		item, ok := s.Lookup(name, current)
		if !ok {
			return Item{}, false
		}
		last = item
		if i < len(path)-1 {
			if !item.ScopeID.IsValid() {
				return Item{}, false
			}
			current = item.ScopeID
		}
	}
	return last, true
}

// Items returns scopeID's own item list.
func (s *Store) Items(scopeID ID) ([]Item, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return nil, false
	}
	return scope.Items, true
}

// ScopeName returns scopeID's name.
func (s *Store) ScopeName(scopeID ID) (hir.Symbol, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return hir.NoSymbol, false
	}
	return scope.Name, true
}

// ScopeParent returns scopeID's parent.
func (s *Store) ScopeParent(scopeID ID) (ID, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return NoID, false
	}
	return scope.Parent, true
}

// ScopeImports returns scopeID's import edges.
func (s *Store) ScopeImports(scopeID ID) ([]Import, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return nil, false
	}
	return scope.Imports, true
}

// ScopeClauses returns scopeID's clause list.
func (s *Store) ScopeClauses(scopeID ID) ([]ClauseEntry, bool) {
	scope, ok := s.scopes[scopeID]
	if !ok {
		return nil, false
	}
	return scope.Clauses, true
}

// Package query implements a typed, demand-driven memoization layer over
// the rest of the compilation pipeline: queries are cached by a
// (QueryKind, key) pair, cache reads executed while another query is active
// are recorded as dependency edges, and invalidating a key also drops every
// query that transitively depended on it.
//
// Go has no trait-associated consts, so the original design's per-key
// {Kind, Name, Value} triple (a Rust trait implemented once per key type)
// becomes an explicit (kind, name) pair passed alongside a Go-generic key at
// each call site, plus a type-erased cache entry keyed on the key's hash.
package query

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// QueryKind tags which kind of query a key belongs to, so that two
// differently-kinded queries whose keys happen to hash equal never collide
// in the cache.
type QueryKind uint16

// ErasedKey is the type-erased cache/graph key every query reduces to:
// its kind plus a content hash of the (Go-generic) key value. Keeping only
// the hash around (not the key itself) is what lets the cache and
// dependency graph be plain non-generic maps.
type ErasedKey struct {
	Kind QueryKind
	Hash uint64
}

// newErasedKey hashes kind jointly with key so that two different query
// kinds never alias in the cache even if their keys happen to hash equal in
// isolation — keys are hashed via their Go-syntax representation (%#v),
// which is stable for the comparable, data-only key types queries are keyed
// on (ints, strings, HirIds, small structs of those).
func newErasedKey[K comparable](kind QueryKind, key K) ErasedKey {
	return ErasedKey{Kind: kind, Hash: xxhash.Sum64String(fmt.Sprintf("%d:%#v", kind, key))}
}

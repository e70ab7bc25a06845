package ast

// FileID identifies a source file owning an Ast.
type FileID uint32

// NoFileID indicates no file.
const NoFileID FileID = 0

// IsValid reports whether the FileID is valid (non-zero).
func (id FileID) IsValid() bool { return id != NoFileID }

// NodeIndex addresses a node in a flat, per-file Ast node store. Index 0 is
// reserved as the invalid/root-less sentinel; the actual root node (if any)
// lives at a non-zero index like every other node.
type NodeIndex uint32

// NoNodeIndex is the invalid sentinel NodeIndex.
const NoNodeIndex NodeIndex = 0

// IsValid reports whether the NodeIndex is valid (non-zero).
func (idx NodeIndex) IsValid() bool { return idx != NoNodeIndex }

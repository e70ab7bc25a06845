// Package token defines lexical token kinds and trivia for the fl compiler.
// Invariants:
//   - Token.Text is the original source text of the token, copied into a string.
//   - Token.Span matches Text exactly (Begin..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - Operators with both adjacent and separated forms (+, -, *, /, <, >) are
//     disambiguated purely by surrounding whitespace; see Token.IsSeparated.
//   - Built-in type names (Int, Float32, Bool, ...) are identifiers.
//     They are recognized by the lowerer, not the lexer.
package token

// Package optable holds the two precedence tables (expression, pattern)
// that drive Pratt-style parsing of operator expressions. The tables map a
// token.Kind to a binding precedence; higher numbers bind tighter.
package optable

import "flc/internal/token"

// Level is an operator binding precedence. Higher binds tighter.
type Level int

// Expression-context precedence levels, from loosest to tightest.
const (
	LevelImplication Level = 10 // =>
	LevelOr          Level = 20 // or
	LevelAnd         Level = 30 // and
	LevelCompareType Level = 40 // < > <= >= == != as
	LevelArrow       Level = 50 // ->
	LevelAddSub      Level = 60 // + -  (separated form)
	LevelMulDiv      Level = 70 // * / % ++  (separated form)
	LevelPipe        Level = 80 // |
	LevelPrefix      Level = 90 // unary + - ! &
	LevelPostfix     Level = 100 // call / index / object-apply
	LevelProjection  Level = 110 // . '
	LevelIdentifier  Level = 120 // bare identifier / literal
)

// Pattern-context precedence levels.
const (
	LevelPatternGuard       Level = 10 // and ... is
	LevelPatternAs          Level = 20 // as
	LevelPatternOr          Level = 30 // or
	LevelPatternPropagation Level = 40 // ? !
	LevelPatternPostfix     Level = 80 // application postfix
	LevelPatternProjection  Level = 90 // projection
)

// entry holds an operator's binding precedence level.
type entry struct {
	level Level
}

// exprTable is the expression-context operator precedence table (spec's
// operator table, component C).
var exprTable = map[token.Kind]entry{
	token.FatArrow: {LevelImplication},

	token.KwOr: {LevelOr},

	token.KwAnd: {LevelAnd},

	token.SeparatedLt: {LevelCompareType},
	token.SeparatedGt: {LevelCompareType},
	token.LtEq:        {LevelCompareType},
	token.GtEq:        {LevelCompareType},
	token.EqEq:        {LevelCompareType},
	token.BangEq:      {LevelCompareType},
	token.KwAs:        {LevelCompareType},

	token.Arrow: {LevelArrow},

	token.SeparatedPlus:  {LevelAddSub},
	token.SeparatedMinus: {LevelAddSub},

	token.SeparatedStar:  {LevelMulDiv},
	token.SeparatedSlash: {LevelMulDiv},
	token.Percent:        {LevelMulDiv},
	token.PlusPlus:       {LevelMulDiv},

	token.Pipe: {LevelPipe},

	token.LParen:   {LevelPostfix},
	token.LBracket: {LevelPostfix},
	token.Hash:     {LevelPostfix},

	token.Dot:   {LevelProjection},
	token.Quote: {LevelProjection},
}

// exprPrefix lists tokens that may start a prefix (unary) expression, along
// with the unary-apply text they carry.
var exprPrefix = map[token.Kind]string{
	token.Plus:  "+",
	token.Minus: "-",
	token.Bang:  "!",
	token.Amp:   "&",
}

// exprBinaryText names the operator spelling recorded on a BinaryApply node
// for each infix token kind, for tokens not already self-describing.
var exprBinaryText = map[token.Kind]string{
	token.SeparatedPlus:  "+",
	token.SeparatedMinus: "-",
	token.SeparatedStar:  "*",
	token.SeparatedSlash: "/",
	token.Percent:        "%",
	token.PlusPlus:       "++",
	token.SeparatedLt:    "<",
	token.SeparatedGt:    ">",
	token.LtEq:           "<=",
	token.GtEq:           ">=",
	token.EqEq:           "==",
	token.BangEq:         "!=",
	token.Pipe:           "|",
	token.KwAnd:          "and",
	token.KwOr:           "or",
	token.KwAs:           "as",
	token.Arrow:          "->",
	token.FatArrow:       "=>",
}

// patternTable is the pattern-context operator precedence table.
var patternTable = map[token.Kind]entry{
	token.KwAnd: {LevelPatternGuard},
	token.KwIs:  {LevelPatternGuard},

	token.KwAs: {LevelPatternAs},

	token.KwOr: {LevelPatternOr},

	token.Question: {LevelPatternPropagation},
	token.Bang:     {LevelPatternPropagation},

	token.LParen:   {LevelPatternPostfix},
	token.LBracket: {LevelPatternPostfix},

	token.Dot:   {LevelPatternProjection},
	token.Quote: {LevelPatternProjection},
}

// ExprPrecedence returns the infix binding precedence of k in expression
// context, and whether k is an infix/postfix operator at all.
func ExprPrecedence(k token.Kind) (Level, bool) {
	e, ok := exprTable[k]
	return e.level, ok
}

// IsExprPrefix reports whether k can begin a prefix-unary expression, and
// returns the operator's spelling for the resulting UnaryApply node.
func IsExprPrefix(k token.Kind) (string, bool) {
	text, ok := exprPrefix[k]
	return text, ok
}

// ExprBinaryText returns the operator spelling to record on a BinaryApply
// node for the infix token kind k.
func ExprBinaryText(k token.Kind) (string, bool) {
	text, ok := exprBinaryText[k]
	return text, ok
}

// PatternPrecedence returns the infix binding precedence of k in pattern
// context, and whether k is an infix/postfix operator there at all.
func PatternPrecedence(k token.Kind) (Level, bool) {
	e, ok := patternTable[k]
	return e.level, ok
}

package lexer

import (
	"github.com/kolang-lang/kolang/common"
)

// Kind classifies a token.
type Kind int

const (
	KindEOF Kind = iota

	KindIdent

	literalStart
	KindIntDec
	KindIntBin
	KindIntOct
	KindIntHex
	KindFloat
	KindChar
	KindStr
	literalEnd

	punctStart
	KindLPar
	KindRPar
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace
	KindLt
	KindGt
	KindLeq
	KindGeq
	KindEq
	KindNeq
	KindAssign
	KindPlus
	KindMinus
	KindAsterisk
	KindSlash
	KindPercent
	KindPipe
	KindAmp
	KindTilde
	KindSemicolon
	KindColon
	KindComma
	KindPeriod
	punctEnd

	keywordStart
	KwFor
	KwTo
	KwWhile
	KwIf
	KwElse
	KwTrue
	KwFalse
	KwOr
	KwAnd
	KwNot
	KwLet
	KwFn
	KwReturn
	KwInt
	KwChar
	KwBool
	KwFloat
	KwStr
	keywordEnd
)

var kindNames = map[Kind]string{
	KindEOF:   "eof",
	KindIdent: "iden",

	KindIntDec: "literal_int_dec",
	KindIntBin: "literal_int_bin",
	KindIntOct: "literal_int_oct",
	KindIntHex: "literal_int_hex",
	KindFloat:  "literal_float",
	KindChar:   "literal_char",
	KindStr:    "literal_str",

	KindLPar:      "lpar",
	KindRPar:      "rpar",
	KindLBracket:  "lbracket",
	KindRBracket:  "rbracket",
	KindLBrace:    "lbrace",
	KindRBrace:    "rbrace",
	KindLt:        "lt",
	KindGt:        "gt",
	KindLeq:       "leq",
	KindGeq:       "geq",
	KindEq:        "eq",
	KindNeq:       "neq",
	KindAssign:    "assign",
	KindPlus:      "plus",
	KindMinus:     "minus",
	KindAsterisk:  "asterisk",
	KindSlash:     "slash",
	KindPercent:   "percent",
	KindPipe:      "pipe",
	KindAmp:       "amp",
	KindTilde:     "tilde",
	KindSemicolon: "semicolon",
	KindColon:     "colon",
	KindComma:     "comma",
	KindPeriod:    "period",

	KwFor:    "kw_for",
	KwTo:     "kw_to",
	KwWhile:  "kw_while",
	KwIf:     "kw_if",
	KwElse:   "kw_else",
	KwTrue:   "kw_true",
	KwFalse:  "kw_false",
	KwOr:     "kw_or",
	KwAnd:    "kw_and",
	KwNot:    "kw_not",
	KwLet:    "kw_let",
	KwFn:     "kw_fn",
	KwReturn: "kw_return",
	KwInt:    "kw_int",
	KwChar:   "kw_char",
	KwBool:   "kw_bool",
	KwFloat:  "kw_float",
	KwStr:    "kw_str",
}

// String returns the stable name of the kind, e.g. "kw_fn" or "lbrace".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) IsLiteral() bool { return k > literalStart && k < literalEnd }
func (k Kind) IsPunct() bool   { return k > punctStart && k < punctEnd }
func (k Kind) IsKeyword() bool { return k > keywordStart && k < keywordEnd }

// IsInt reports whether k is one of the integer literal kinds.
func (k Kind) IsInt() bool {
	switch k {
	case KindIntDec, KindIntBin, KindIntOct, KindIntHex:
		return true
	}
	return false
}

// Describe renders the kind for diagnostics: the literal text for
// keywords and punctuation, a noun otherwise.
func (k Kind) Describe() string {
	switch {
	case k.IsKeyword():
		return "'" + keywordNames[k] + "'"
	case k.IsPunct():
		return "'" + punctNames[k] + "'"
	case k.IsInt():
		return "integer literal"
	}
	switch k {
	case KindIdent:
		return "identifier"
	case KindFloat:
		return "float literal"
	case KindChar:
		return "character literal"
	case KindStr:
		return "string literal"
	case KindEOF:
		return "end of input"
	}
	return k.String()
}

// Token is a classified lexeme. Tokens are values and never change once
// produced.
type Token struct {
	Kind   Kind
	Lexeme string
	span   common.Span
}

func NewToken(kind Kind, lexeme string, span common.Span) Token {
	return Token{Kind: kind, Lexeme: lexeme, span: span}
}

func (t Token) Span() common.Span {
	return t.span
}

func (t Token) String() string {
	if t.Kind == KindEOF {
		return "<EOF>"
	}
	return t.Lexeme
}

// Is reports whether t is the keyword or punctuation spelled other.
func (t Token) Is(other string) bool {
	if !t.Kind.IsKeyword() && !t.Kind.IsPunct() {
		return false
	}
	return t.Lexeme == other
}

// AsString is used for keywords and punctuations, to make it easier to
// switch on tokens for them. It is empty for every other kind.
func (t Token) AsString() string {
	if t.Kind.IsKeyword() || t.Kind.IsPunct() {
		return t.Lexeme
	}
	return ""
}

// Describe renders t for "found ..." diagnostics.
func (t Token) Describe() string {
	switch {
	case t.Kind == KindEOF:
		return "end of input"
	case t.Kind.IsKeyword() || t.Kind.IsPunct():
		return "'" + t.Lexeme + "'"
	case t.Kind == KindIdent:
		return "identifier '" + t.Lexeme + "'"
	default:
		return t.Kind.Describe() + " " + t.Lexeme
	}
}

func IsEOF(t Token) bool {
	return t.Kind == KindEOF
}

func IsIdent(t Token) bool {
	return t.Kind == KindIdent
}

func IsIdentStr(t Token, s string) bool {
	return t.Kind == KindIdent && t.Lexeme == s
}

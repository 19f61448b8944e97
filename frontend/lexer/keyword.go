package lexer

import "sort"

// table is populated at compile-time; no code runs in init().
var keywordTable = map[string]Kind{
	"for":    KwFor,
	"to":     KwTo,
	"while":  KwWhile,
	"if":     KwIf,
	"else":   KwElse,
	"true":   KwTrue,
	"false":  KwFalse,
	"or":     KwOr,
	"and":    KwAnd,
	"not":    KwNot,
	"let":    KwLet,
	"fn":     KwFn,
	"return": KwReturn,
	"int":    KwInt,
	"char":   KwChar,
	"bool":   KwBool,
	"float":  KwFloat,
	"str":    KwStr,
}

var keywordNames = func() map[Kind]string {
	names := make(map[Kind]string, len(keywordTable))
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Kind, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsKeyword reports whether lit is a reserved word.
func IsKeyword(lit string) bool {
	_, ok := keywordTable[lit]
	return ok
}

// Keywords returns every reserved word in alphabetical order.
func Keywords() []string {
	out := make([]string, 0, len(keywordTable))
	for lit := range keywordTable {
		out = append(out, lit)
	}
	sort.Strings(out)
	return out
}

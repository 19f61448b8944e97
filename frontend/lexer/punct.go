package lexer

var punctTable = map[string]Kind{
	"(":  KindLPar,
	")":  KindRPar,
	"[":  KindLBracket,
	"]":  KindRBracket,
	"{":  KindLBrace,
	"}":  KindRBrace,
	"<":  KindLt,
	">":  KindGt,
	"<=": KindLeq,
	">=": KindGeq,
	"==": KindEq,
	"!=": KindNeq,
	"=":  KindAssign,
	"+":  KindPlus,
	"-":  KindMinus,
	"*":  KindAsterisk,
	"/":  KindSlash,
	"%":  KindPercent,
	"|":  KindPipe,
	"&":  KindAmp,
	"~":  KindTilde,
	";":  KindSemicolon,
	":":  KindColon,
	",":  KindComma,
	".":  KindPeriod,
}

var punctNames = func() map[Kind]string {
	names := make(map[Kind]string, len(punctTable))
	for lit, p := range punctTable {
		names[p] = lit
	}
	return names
}()

// punct lexes the longest punctuation starting at the current character.
// It returns false when the character starts no punctuation; a lone '!'
// is left for the caller to report.
func (lx *Lexer) punct() (Token, bool) {
	c := lx.curChr
	if c == nil {
		return Token{}, false
	}
	if p := lx.peek(); p != nil && *p == '=' {
		if kind, ok := punctTable[string(*c)+"="]; ok {
			lx.advance()
			lx.advance()
			return lx.token(kind), true
		}
	}
	kind, ok := punctTable[string(*c)]
	if !ok {
		return Token{}, false
	}
	lx.advance()
	return lx.token(kind), true
}

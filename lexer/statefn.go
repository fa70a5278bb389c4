package lexer

import (
	"errors"
	"strconv"
)

const digits = "0123456789"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+':  TokPlus,
	'-':  TokMinus,
	'*':  TokTimes,
	'/':  TokDivide,
	' ':  TokWhitespace,
	'\t': TokWhitespace,
	'\n': TokWhitespace,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == '.', r >= '0' && r <= '9':
		return lexNumber
	default:
		l.next()
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.emit(TokInvalid)
	}
}

// lexNumber scans digits with at most one dot.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	tok := l.thisToken(TokNumber)
	number, err := strconv.ParseFloat(tok.Value, 64)
	// Out of range literals saturate to ±Inf or 0 instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		tok.Type = TokInvalid
		return l.emitToken(tok)
	}
	tok.Number = number
	return l.emitToken(tok)
}

package annotation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokSymbol
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string literal"
	case tokNumber:
		return "number"
	case tokSymbol:
		return "symbol"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type lexeme struct {
	kind tokenKind
	text string
	pos  int
}

const symbols = "?|<>,[]{}():"

// lex splits an annotation expression into lexemes. Identifiers keep their
// namespace separators and dashes so `\App\User` and `array-key` stay whole.
func lex(src string) ([]lexeme, error) {
	var out []lexeme
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case isIdentStart(r):
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentPart(r) {
					break
				}
				i += size
			}
			out = append(out, lexeme{kind: tokIdent, text: src[start:i], pos: start})
		case r == '-' || unicode.IsDigit(r):
			start := i
			i += size
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !unicode.IsDigit(r) && r != '.' {
					break
				}
				i += size
			}
			if src[start:i] == "-" {
				return nil, &ParseError{Pos: start, Msg: "unexpected '-'"}
			}
			out = append(out, lexeme{kind: tokNumber, text: src[start:i], pos: start})
		case r == '\'' || r == '"':
			start := i
			quote := r
			i += size
			closed := false
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				i += size
				if r == '\\' && i < len(src) {
					_, esc := utf8.DecodeRuneInString(src[i:])
					i += esc
					continue
				}
				if r == quote {
					closed = true
					break
				}
			}
			if !closed {
				return nil, &ParseError{Pos: start, Msg: "unterminated string literal"}
			}
			out = append(out, lexeme{kind: tokString, text: src[start+1 : i-1], pos: start})
		case r < utf8.RuneSelf && strings.IndexByte(symbols, byte(r)) >= 0:
			out = append(out, lexeme{kind: tokSymbol, text: string(r), pos: i})
			i += size
		default:
			return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	out = append(out, lexeme{kind: tokEOF, pos: len(src)})
	return out, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '\\' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r == '-' || unicode.IsDigit(r)
}


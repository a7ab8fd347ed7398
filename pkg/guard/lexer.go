package guard

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokAnd           // &&
	tokOp            // == != < > <= >= eq ne
	tokRef           // _N
	tokNumber
	tokString
	tokIdent // function name
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string // operator text, identifier, or string literal contents
	num  float64
	pos  int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) tokens() ([]token, error) {
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '&':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '&' {
			l.pos += 2
			return token{kind: tokAnd, text: "&&", pos: start}, nil
		}
		return token{}, syntaxErr(l.src, start, "single %q", "&")

	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil

	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil

	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil

	case c == '"' || c == '\'':
		return l.stringLiteral(c)

	case c == '=' || c == '!':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			l.pos += 2
			return token{kind: tokOp, text: l.src[start:l.pos], pos: start}, nil
		}
		return token{}, syntaxErr(l.src, start, "incomplete operator %q", string(c))

	case c == '<' || c == '>':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
		}
		return token{kind: tokOp, text: l.src[start:l.pos], pos: start}, nil

	case c == '_':
		return l.reference()

	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return l.number()

	case isIdentStart(rune(c)):
		return l.identifier()

	default:
		return token{}, syntaxErr(l.src, start, "unexpected character %q", string(c))
	}
}

// stringLiteral scans a quoted literal. Both single and double quotes are
// accepted; a backslash escapes the next character.
func (l *lexer) stringLiteral(quote byte) (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '\\':
			if l.pos+1 >= len(l.src) {
				return token{}, syntaxErr(l.src, start, "dangling escape")
			}
			b.WriteByte(l.src[l.pos+1])
			l.pos += 2
		case quote:
			l.pos++
			return token{kind: tokString, text: b.String(), pos: start}, nil
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return token{}, syntaxErr(l.src, start, "unterminated string")
}

// reference scans a positional reference _N.
func (l *lexer) reference() (token, error) {
	start := l.pos
	l.pos++ // underscore
	digits := l.pos
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	if l.pos == digits {
		return token{}, syntaxErr(l.src, start, "positional reference needs an index")
	}
	n, err := strconv.Atoi(l.src[digits:l.pos])
	if err != nil || n < 1 {
		return token{}, syntaxErr(l.src, start, "invalid positional reference %q", l.src[start:l.pos])
	}
	return token{kind: tokRef, num: float64(n), text: l.src[start:l.pos], pos: start}, nil
}

func (l *lexer) number() (token, error) {
	start := l.pos
	if l.src[l.pos] == '-' || l.src[l.pos] == '+' {
		l.pos++
	}
	for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '.') {
		l.pos++
	}
	text := l.src[start:l.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, syntaxErr(l.src, start, "invalid number %q", text)
	}
	return token{kind: tokNumber, num: n, text: text, pos: start}, nil
}

// identifier scans a bare word: a function name, or the textual operators
// eq and ne.
func (l *lexer) identifier() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(rune(l.src[l.pos])) {
		l.pos++
	}
	word := l.src[start:l.pos]
	if word == "eq" || word == "ne" {
		return token{kind: tokOp, text: word, pos: start}, nil
	}
	return token{kind: tokIdent, text: word, pos: start}, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

package grammar

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenString
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
	line int
}

// scanner tokenizes just enough of a grammar source to read its header:
// the grammar declaration, options blocks, import statements, and token
// specs. Rule bodies are scanned but never interpreted.
type scanner struct {
	src  []rune
	pos  int
	line int
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), line: 1}
}

func (s *scanner) next() (token, error) {
	s.skipBlanksAndComments()

	if s.pos >= len(s.src) {
		return token{kind: tokenEOF, line: s.line}, nil
	}

	ch := s.src[s.pos]
	switch {
	case isIdentStart(ch):
		return s.scanIdent(), nil
	case ch == '\'':
		return s.scanString()
	default:
		s.pos++
		return token{kind: tokenSymbol, text: string(ch), line: s.line}, nil
	}
}

func (s *scanner) scanIdent() token {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	return token{kind: tokenIdent, text: string(s.src[start:s.pos]), line: s.line}
}

func (s *scanner) scanString() (token, error) {
	startLine := s.line
	s.pos++ // opening quote

	var sb strings.Builder
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == '\\' && s.pos+1 < len(s.src) {
			sb.WriteRune(ch)
			sb.WriteRune(s.src[s.pos+1])
			s.pos += 2
			continue
		}
		if ch == '\'' {
			s.pos++
			return token{kind: tokenString, text: sb.String(), line: startLine}, nil
		}
		if ch == '\n' {
			break
		}
		sb.WriteRune(ch)
		s.pos++
	}

	return token{}, fmt.Errorf("unterminated string literal at line %d", startLine)
}

func (s *scanner) skipBlanksAndComments() {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\n':
			s.line++
			s.pos++
		case unicode.IsSpace(ch):
			s.pos++
		case ch == '/' && s.peekAt(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case ch == '/' && s.peekAt(1) == '*':
			s.pos += 2
			for s.pos < len(s.src) {
				if s.src[s.pos] == '\n' {
					s.line++
				}
				if s.src[s.pos] == '*' && s.peekAt(1) == '/' {
					s.pos += 2
					break
				}
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

package arith

import (
	"github.com/zalgonoise/walk/scan"
)

var singles = map[rune]Kind{
	'(': TokenLParen,
	')': TokenRParen,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDiv,
	'>': TokenGT,
	'<': TokenLT,
	'=': TokenEQ,
	'.': TokenPoint,
	'^': TokenPow,
	';': TokenSemi,
}

// NewLexer returns a Scanner over `src`. Whitespace goes to the hidden channel
func NewLexer(src string) *scan.Scanner[Kind] {
	return scan.New([]rune(src), initState, TokenEOF)
}

// Tokenize scans the whole of `src`, returning the tokens of every channel in order
func Tokenize(src string) ([]scan.Token[Kind], error) {
	var tokens []scan.Token[Kind]
	for tok, err := range NewLexer(src).Tokens() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func initState(s *scan.Scanner[Kind]) scan.StateFn[Kind] {
	r := s.Peek()
	switch {
	case r == scan.EOF:
		return nil
	case isIdentStart(r):
		return stateVariable
	case isDigit(r):
		return stateNumber
	case isSpace(r):
		return stateWhitespace
	}
	if k, ok := singles[r]; ok {
		s.Next()
		s.Emit(k)
		return initState
	}
	return s.Fail()
}

func stateVariable(s *scan.Scanner[Kind]) scan.StateFn[Kind] {
	s.Next()
	s.AcceptRun(isIdentChar)
	s.Emit(TokenVariable)
	return initState
}

// stateNumber matches digits ('.' digits)? ([Ee] [+-]? digits)?, and backs off any
// fraction or exponent that isn't followed by digits
func stateNumber(s *scan.Scanner[Kind]) scan.StateFn[Kind] {
	s.AcceptRun(isDigit)

	mark := s.Pos()
	if s.Next() == '.' && s.AcceptRun(isDigit) > 0 {
		mark = s.Pos()
	}
	s.Reset(mark)

	if r := s.Next(); r == 'e' || r == 'E' {
		s.Accept(isSign)
		if s.AcceptRun(isDigit) > 0 {
			mark = s.Pos()
		}
	}
	s.Reset(mark)

	s.Emit(TokenNumber)
	return initState
}

func stateWhitespace(s *scan.Scanner[Kind]) scan.StateFn[Kind] {
	s.AcceptRun(isSpace)
	s.EmitHidden(TokenWhitespace)
	return initState
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

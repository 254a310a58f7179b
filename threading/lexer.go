package threading

import (
	"github.com/zalgonoise/walk/scan"
)

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
	switch r := s.Next(); {
	case r == scan.EOF:
		return nil
	case r == '+':
		s.Emit(TokenPlus)
	case r == '*':
		s.Emit(TokenTimes)
	case r >= '0' && r <= '9':
		s.AcceptRun(func(r rune) bool { return r >= '0' && r <= '9' })
		s.Emit(TokenInt)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		s.AcceptRun(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' })
		s.EmitHidden(TokenWhitespace)
	default:
		return s.Fail()
	}
	return initState
}

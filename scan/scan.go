// Package scan implements a generic state-function scanner over rune input.
//
// A grammar supplies its own StateFns; each one reads runes with Next, Peek, Accept and
// AcceptRun, and emits the matched span as a Token with Emit (default channel) or
// EmitHidden (side channel). Returning nil from a StateFn ends the scan.
//
// The emitted tokens carry a lex.Item as payload, so the default channel can be handed
// straight to a walk.Tree through NextItem.
package scan

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/zalgonoise/lex"
)

// EOF is the rune returned by Next and Peek past the end of the input
const EOF rune = -1

// ErrUnexpectedChar is wrapped by every Error raised by a Scanner
var ErrUnexpectedChar = errors.New("unexpected character")

// Error is a lexical error: the character at offset Pos starts no token
type Error struct {
	Pos  int
	Char rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrUnexpectedChar, e.Char, e.Pos)
}

func (e *Error) Unwrap() error {
	return ErrUnexpectedChar
}

// Channel tells apart the tokens a parser consumes from the ones kept aside
type Channel uint8

const (
	Default Channel = iota
	Hidden
)

// Token is a classified span of the input. Pos is the rune offset of its first character
type Token[C comparable] struct {
	lex.Item[C, rune]
	Channel Channel
}

// Text returns the matched substring
func (t Token[C]) Text() string {
	return string(t.Value)
}

// Start returns the offset of the first rune of the token
func (t Token[C]) Start() int {
	return t.Pos
}

// End returns the offset right after the last rune of the token
func (t Token[C]) End() int {
	return t.Pos + len(t.Value)
}

// StateFn is both a state and its action: it scans from the current position and
// returns the next state, or nil once the input is exhausted or an error was raised
type StateFn[C comparable] func(s *Scanner[C]) StateFn[C]

// Scanner runs StateFns over its input, left to right and exactly once. Tokens are
// queued as they are emitted and handed out lazily
type Scanner[C comparable] struct {
	input []rune
	start int
	pos   int
	state StateFn[C]
	eof   C

	queue  []Token[C]
	hidden []Token[C]
	err    error
}

// New creates a Scanner over `input`, starting on the StateFn `init`. The type `eof` is
// used for the end-of-input Item returned by NextItem
func New[C comparable](input []rune, init StateFn[C], eof C) *Scanner[C] {
	return &Scanner[C]{
		input: input,
		state: init,
		eof:   eof,
	}
}

// Next consumes and returns the next rune, or EOF
func (s *Scanner[C]) Next() rune {
	if s.pos >= len(s.input) {
		return EOF
	}
	r := s.input[s.pos]
	s.pos++
	return r
}

// Peek returns but does not consume the next rune, or EOF
func (s *Scanner[C]) Peek() rune {
	if s.pos >= len(s.input) {
		return EOF
	}
	return s.input[s.pos]
}

// Backup un-reads the last rune consumed within the current token
func (s *Scanner[C]) Backup() {
	if s.pos > s.start {
		s.pos--
	}
}

// Pos returns the current read position
func (s *Scanner[C]) Pos() int {
	return s.pos
}

// Reset moves the read position back to `pos`, which must lie within the current token.
// It lets a StateFn give up on a speculative match
func (s *Scanner[C]) Reset(pos int) {
	if pos < s.start {
		pos = s.start
	}
	if pos < s.pos {
		s.pos = pos
	}
}

// Width returns the number of runes read for the current token
func (s *Scanner[C]) Width() int {
	return s.pos - s.start
}

// Accept consumes the next rune if `fn` approves it
func (s *Scanner[C]) Accept(fn func(r rune) bool) bool {
	r := s.Peek()
	if r == EOF || !fn(r) {
		return false
	}
	s.pos++
	return true
}

// AcceptRun consumes runes while `fn` approves them, returning how many were consumed
func (s *Scanner[C]) AcceptRun(fn func(r rune) bool) int {
	var n int
	for s.Accept(fn) {
		n++
	}
	return n
}

// Emit queues the current span as a default-channel token of type `typ`
func (s *Scanner[C]) Emit(typ C) {
	s.emit(typ, Default)
}

// EmitHidden queues the current span as a hidden-channel token of type `typ`
func (s *Scanner[C]) EmitHidden(typ C) {
	s.emit(typ, Hidden)
}

func (s *Scanner[C]) emit(typ C, ch Channel) {
	s.queue = append(s.queue, Token[C]{
		Item:    lex.NewItem(s.start, typ, s.input[s.start:s.pos]...),
		Channel: ch,
	})
	s.start = s.pos
}

// Fail raises a lexical error for the character at the start of the current token and
// stops the scan
func (s *Scanner[C]) Fail() StateFn[C] {
	var r = EOF
	if s.start < len(s.input) {
		r = s.input[s.start]
	}
	s.err = &Error{Pos: s.start, Char: r}
	s.pos = s.start
	return nil
}

// Token returns the next token on any channel, running StateFns until one is queued
//
// It returns io.EOF once the input is exhausted, or the lexical error that stopped the scan
func (s *Scanner[C]) Token() (Token[C], error) {
	for len(s.queue) == 0 {
		if s.state == nil {
			if s.err != nil {
				return Token[C]{}, s.err
			}
			return Token[C]{}, io.EOF
		}
		s.state = s.state(s)
	}
	tok := s.queue[0]
	s.queue = s.queue[1:]
	return tok, nil
}

// Tokens returns the lazy sequence of every token on every channel. A lexical error is
// yielded once, as the last element
func (s *Scanner[C]) Tokens() iter.Seq2[Token[C], error] {
	return func(yield func(Token[C], error) bool) {
		for {
			tok, err := s.Token()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(tok, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// NextItem returns the next default-channel token's Item, setting hidden tokens aside.
// Past the end of the input, or after a lexical error, it returns an end-of-input Item
func (s *Scanner[C]) NextItem() lex.Item[C, rune] {
	for {
		tok, err := s.Token()
		if err != nil {
			return lex.NewItem[C, rune](s.pos, s.eof)
		}
		if tok.Channel == Hidden {
			s.hidden = append(s.hidden, tok)
			continue
		}
		return tok.Item
	}
}

// Hidden returns the hidden-channel tokens NextItem has set aside so far
func (s *Scanner[C]) Hidden() []Token[C] {
	return s.hidden
}

// Err returns the lexical error that stopped the scan, if any
func (s *Scanner[C]) Err() error {
	return s.err
}

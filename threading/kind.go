// Package threading is the front-end of a tiny integer language of sums and products:
//
//	s    : expr EOF
//	expr : expr '*' expr   # multiply
//	     | expr '+' expr   # add
//	     | INT             # number
//
// The three alternatives of expr are labelled, so a tree holds add, multiply and number
// nodes rather than expr nodes, and the Listener and Visitor contracts address each one.
// Every Scanner, Tree and Visitor is owned by a single goroutine; EvaluateAll runs
// independent inputs in parallel on that basis.
package threading

import (
	"github.com/zalgonoise/walk"
)

// Kind identifies both the tokens and the grammar rules of the language
type Kind uint8

const (
	TokenEOF Kind = iota
	TokenInt
	TokenPlus
	TokenTimes
	TokenWhitespace

	RuleS
	RuleAdd
	RuleNumber
	RuleMultiply
)

var kindNames = [...]string{
	TokenEOF:        "EOF",
	TokenInt:        "INT",
	TokenPlus:       "PLUS",
	TokenTimes:      "TIMES",
	TokenWhitespace: "WHITESPACE",

	RuleS:        "s",
	RuleAdd:      "add",
	RuleNumber:   "number",
	RuleMultiply: "multiply",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsRule reports whether k is a grammar rule (or labelled alternative) rather than a token
func (k Kind) IsRule() bool {
	return k >= RuleS && k <= RuleMultiply
}

// Rules lists the grammar rules and labelled alternatives, in declaration order
var Rules = []Kind{RuleS, RuleAdd, RuleNumber, RuleMultiply}

// Tokens lists the token kinds a lexer may emit
var Tokens = []Kind{TokenInt, TokenPlus, TokenTimes, TokenWhitespace}

type (
	Node = walk.Node[Kind, rune]
	Tree = walk.Tree[Kind, rune]
)

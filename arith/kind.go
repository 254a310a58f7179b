// Package arith is the front-end of a small arithmetic language: variables, scientific
// numbers, the four operations, powers, parentheses and comparisons, in
// semicolon-separated statements.
//
// Source text goes through NewLexer into a scan.Scanner, whose default channel feeds the
// parser building a walk.Tree. The tree is consumed either through a Listener (enter and
// exit hooks per rule) or a Visitor (one result-returning function per rule).
package arith

import (
	"github.com/zalgonoise/walk"
)

// Kind identifies both the tokens and the grammar rules of the language
type Kind uint8

const (
	TokenEOF Kind = iota
	TokenVariable
	TokenNumber
	TokenLParen
	TokenRParen
	TokenPlus
	TokenMinus
	TokenTimes
	TokenDiv
	TokenGT
	TokenLT
	TokenEQ
	TokenPoint
	TokenPow
	TokenSemi
	TokenWhitespace

	RuleFile
	RuleExpression
	RuleAtom
	RuleScientific
	RuleVariable
)

var kindNames = [...]string{
	TokenEOF:        "EOF",
	TokenVariable:   "VARIABLE",
	TokenNumber:     "NUMBER",
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenTimes:      "TIMES",
	TokenDiv:        "DIV",
	TokenGT:         "GT",
	TokenLT:         "LT",
	TokenEQ:         "EQ",
	TokenPoint:      "POINT",
	TokenPow:        "POW",
	TokenSemi:       "SEMI",
	TokenWhitespace: "WHITESPACE",

	RuleFile:       "file",
	RuleExpression: "expression",
	RuleAtom:       "atom",
	RuleScientific: "scientific",
	RuleVariable:   "variable",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsRule reports whether k is a grammar rule rather than a token
func (k Kind) IsRule() bool {
	return k >= RuleFile && k <= RuleVariable
}

// Rules lists the grammar rules, in declaration order
var Rules = []Kind{RuleFile, RuleExpression, RuleAtom, RuleScientific, RuleVariable}

// Tokens lists the token kinds a lexer may emit, in declaration order
var Tokens = []Kind{
	TokenVariable, TokenNumber, TokenLParen, TokenRParen, TokenPlus, TokenMinus,
	TokenTimes, TokenDiv, TokenGT, TokenLT, TokenEQ, TokenPoint, TokenPow, TokenSemi,
	TokenWhitespace,
}

type (
	Node = walk.Node[Kind, rune]
	Tree = walk.Tree[Kind, rune]
)

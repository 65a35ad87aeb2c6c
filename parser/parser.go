/*
File    : go-mica/parser/parser.go
Project : Mica
*/

/*
Package parser implements the two-phase, priority-driven expression parser
of the Mica programming language, together with the statement and scope
parsers built on top of it.

The parser converts the flat token list produced by the lexer into an
abstract syntax tree. Expression parsing proceeds in two strictly separate
passes:

  - Pass A (flattening): the token window is walked left to right and
    turned into a flat list of ExprObjs — operators, values (identifiers,
    integer literals, function literals, call argument tuples), and
    bracketed sub-lists for grouping parentheses.
  - Pass B (priority folding): the flat list is reduced to a single
    expression tree by repeated highest-to-lowest priority sweeps; each
    sweep folds (left, operator, right) triples of the current priority
    into operation nodes, left to right, giving left-associative binary
    operators.

The two passes share only the flat ExprObj list, which keeps each pass
testable in isolation and lets Pass A resolve the dual role of `(`
(grouping vs call) with one symbol of left context: the last ExprObj
emitted into the list currently being built.

Errors are fatal: parsing stops at the first error and reports it to the
caller. The package exposes its error categories as sentinel errors so
callers can match them with errors.Is.
*/
package parser

import (
	"errors"
	"fmt"

	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/optable"
)

// Sentinel errors for the closed set of parse failure categories.
// Returned errors wrap one of these; match with errors.Is.
var (
	// ErrEmptyExpression reports an expression window with no tokens
	ErrEmptyExpression = errors.New("empty expression")
	// ErrOperatorAsValue reports an operator where a value was expected
	ErrOperatorAsValue = errors.New("found operator instead of value")
	// ErrTrailingOperator reports an expression ending with an operator
	ErrTrailingOperator = errors.New("expression cannot end with an operator")
	// ErrExpectedComma reports a missing ',' in an argument or parameter list
	ErrExpectedComma = errors.New("expected operator ','")
	// ErrExpectedParameterName reports a non-identifier in a parameter list
	ErrExpectedParameterName = errors.New("expected variable name")
	// ErrUnexpectedToken reports a token that cannot start what follows
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnexpectedEnd reports running out of tokens before ')' or '}'
	ErrUnexpectedEnd = errors.New("unexpected end of tokens")
)

// Parser holds the parsing state: the immutable token list, the shared
// operator table, and the cursor index. Every parsing routine advances
// the cursor; expression parsing leaves it on the terminator token.
type Parser struct {
	Tokens []string       // The token list under the cursor
	Table  *optable.Table // Operator lexeme -> priority mapping
	Pos    int            // Cursor index into Tokens
}

// NewParser creates a parser over the given token list and operator
// table. The cursor starts at the first token.
func NewParser(tokens []string, table *optable.Table) *Parser {
	return &Parser{Tokens: tokens, Table: table}
}

// ParseScope is the package entry point: it parses the whole token list
// as a statement sequence and returns the resulting scope. The scope's
// parent link is nil; the caller seeds and executes it.
func ParseScope(tokens []string, table *optable.Table) (*ast.Scope, error) {
	par := NewParser(tokens, table)
	scope, err := par.parseScope(len(tokens))
	if err != nil {
		return nil, err
	}
	return scope, nil
}

// current returns the token under the cursor. Callers bound-check the
// cursor against the window end before calling.
func (par *Parser) current() string {
	return par.Tokens[par.Pos]
}

// advance moves the cursor forward by one token.
func (par *Parser) advance() {
	par.Pos++
}

// expectAdvance checks that the token under the cursor is the expected
// lexeme and moves past it, or reports an error naming both.
func (par *Parser) expectAdvance(expected string, end int) error {
	if par.Pos >= end {
		return fmt.Errorf("%w: expected '%s'", ErrUnexpectedEnd, expected)
	}
	if par.current() != expected {
		return fmt.Errorf("%w: expected '%s', got '%s'", ErrUnexpectedToken, expected, par.current())
	}
	par.advance()
	return nil
}

// isTerminator reports whether the token ends an expression window.
// The expression parser stops on the first unbracketed terminator and
// leaves the cursor on it.
func isTerminator(token string) bool {
	return token == ";" || token == "}" || token == "," || token == ")"
}

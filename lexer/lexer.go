/*
File    : go-mica/lexer/lexer.go
Project : Mica
*/

// Package lexer performs lexical analysis of Mica source code. It scans
// the source text and splits it into an ordered list of token strings:
// operator lexemes (as-is), integer literal digit runs, the keywords
// function / let / return, and identifiers (any other non-operator
// lexeme). Whitespace separates tokens and is otherwise discarded.
//
// The lexer is driven by the operator lexeme list from the operator
// table: multi-character operators (+=, ==, ...) are matched greedily so
// they always come out as a single token.
package lexer

// Lexer scans Mica source text into token strings. It maintains a cursor
// into the source and the operator lexemes it must split on.
//
// Fields:
//   - Src: the complete source code
//   - Position: current index into the source (0-indexed)
//   - SrcLength: total length of the source
type Lexer struct {
	Src       string // Entire source code in plain text form
	Position  int    // Current position of the cursor in the source
	SrcLength int    // Length of the source string
	operators []string
}

// NewLexer creates a Lexer for the given source code and operator
// lexeme list.
func NewLexer(src string, operators []string) *Lexer {
	return &Lexer{
		Src:       src,
		Position:  0,
		SrcLength: len(src),
		operators: operators,
	}
}

// Tokenize is the package-level convenience entry point: it scans the
// whole source and returns the ordered token list.
func Tokenize(src string, operators []string) []string {
	lex := NewLexer(src, operators)
	tokens := make([]string, 0)
	for {
		token, ok := lex.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// NextToken scans and returns the next token. The second return value is
// false once the source is exhausted.
func (lex *Lexer) NextToken() (string, bool) {
	lex.skipWhitespace()
	if lex.Position >= lex.SrcLength {
		return "", false
	}

	// An operator lexeme at the cursor is a token by itself; the longest
	// match wins so "+=" never splits into "+" "=".
	if op := lex.matchOperator(); op != "" {
		lex.Position += len(op)
		return op, true
	}

	// Everything else accumulates until whitespace or the start of an
	// operator: integer literals, keywords, and identifiers all come out
	// as plain lexeme runs.
	start := lex.Position
	for lex.Position < lex.SrcLength &&
		!isWhitespace(lex.Src[lex.Position]) &&
		lex.matchOperator() == "" {
		lex.Position++
	}
	return lex.Src[start:lex.Position], true
}

// matchOperator returns the longest operator lexeme starting at the
// cursor, or "" if none matches.
func (lex *Lexer) matchOperator() string {
	best := ""
	for _, op := range lex.operators {
		if len(op) > len(best) && lex.hasPrefix(op) {
			best = op
		}
	}
	return best
}

// hasPrefix reports whether the source at the cursor starts with s.
func (lex *Lexer) hasPrefix(s string) bool {
	if lex.Position+len(s) > lex.SrcLength {
		return false
	}
	return lex.Src[lex.Position:lex.Position+len(s)] == s
}

// skipWhitespace advances the cursor past spaces, tabs, and newlines.
func (lex *Lexer) skipWhitespace() {
	for lex.Position < lex.SrcLength && isWhitespace(lex.Src[lex.Position]) {
		lex.Position++
	}
}

// isWhitespace reports whether the byte separates tokens.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

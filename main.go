/*
File    : go-mica/main.go
Project : Mica
*/

// Command go-mica runs the Mica interpreter: with a file argument it
// executes the file; with no arguments it starts the interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mica-lang/go-mica/eval"
	"github.com/mica-lang/go-mica/lexer"
	"github.com/mica-lang/go-mica/optable"
	"github.com/mica-lang/go-mica/parser"
	"github.com/mica-lang/go-mica/repl"
	"github.com/mica-lang/go-mica/std"
)

const version = "0.1.0"

const banner = `
  __  __ _
 |  \/  (_) ___ __ _
 | |\/| | |/ __/ _' |
 | |  | | | (_| (_| |
 |_|  |_|_|\___\__,_|
`

const line = "----------------------------------------------------------------"

var errColor = color.New(color.FgRed)

func main() {
	table := optable.Default()

	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: go-mica [script.mica]")
		os.Exit(2)
	}

	if len(os.Args) == 2 {
		runFile(os.Args[1], table)
		return
	}

	r := repl.NewRepl(banner, version, line, "mica >>> ", table)
	r.Start(os.Stdin, os.Stdout)
}

// runFile executes a Mica source file: tokenize, parse, seed the root
// scope with the standard builtins, execute. Errors are fatal: the
// diagnostic prints to stderr and the process exits non-zero.
func runFile(path string, table *optable.Table) {
	src, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	tokens := lexer.Tokenize(string(src), table.Lexemes())
	scope, err := parser.ParseScope(tokens, table)
	if err != nil {
		errColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	std.Seed(scope, os.Stdout)

	if _, err := eval.ExecuteScope(scope); err != nil {
		errColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(1)
	}
}

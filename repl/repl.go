/*
File    : go-mica/repl/repl.go
Project : Mica

Package repl implements the Read-Eval-Print Loop for the Mica
interpreter. The REPL provides an interactive session where users can
enter Mica statements line by line against one persistent root scope, so
bindings made on earlier lines stay visible on later ones. It uses the
readline library for line editing and history, and colored output for
results and errors.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/eval"
	"github.com/mica-lang/go-mica/lexer"
	"github.com/mica-lang/go-mica/optable"
	"github.com/mica-lang/go-mica/parser"
	"github.com/mica-lang/go-mica/std"
)

// Color definitions for REPL output:
// - blueColor: separators
// - yellowColor: expression results
// - redColor: parse and runtime errors
// - greenColor: banner
// - cyanColor: usage instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session configuration.
type Repl struct {
	Banner  string         // Banner displayed at startup
	Version string         // Interpreter version string
	Line    string         // Separator line for visual formatting
	Prompt  string         // Command prompt (e.g. "mica >>> ")
	Table   *optable.Table // Operator table shared by lexer and parser
}

// NewRepl creates a REPL over the given operator table.
func NewRepl(banner, version, line, prompt string, table *optable.Table) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, Table: table}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The session holds one root scope,
// seeded with the standard builtins; each input line is tokenized,
// parsed, and its statements are executed against that scope. The loop
// continues until the user types '.exit' or closes the input (Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	// The session scope persists across lines.
	session := ast.NewScope(nil)
	std.Seed(session, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt (Ctrl+D / Ctrl+C)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, session)
	}
}

// executeLine tokenizes, parses, and executes one input line against the
// session scope. Parse and runtime errors print in red and return to the
// prompt; the session scope keeps the bindings made before the error.
func (r *Repl) executeLine(writer io.Writer, line string, session *ast.Scope) {
	tokens := lexer.Tokenize(line, r.Table.Lexemes())
	scope, err := parser.ParseScope(tokens, r.Table)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}

	for _, stmt := range scope.Statements {
		result, err := eval.ExecuteStatement(stmt, session)
		if err != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", err)
			return
		}
		// Echo the value of bare expression statements, the way an
		// interactive calculator would; Undefined results stay silent.
		if result != nil && result.Constant.Type != ast.UndefinedType {
			yellowColor.Fprintf(writer, "%s\n", result.ToString())
		}
	}
	session.ReturnValue = nil
}

// Package main provides the proxima front-end driver.
//
// The driver runs the pipeline front to back:
// 1. Lexical Analysis (tokenization)
// 2. Syntax Analysis (parsing)
//
// With -tokens it stops after lexing and dumps the token sequence, error
// tokens included. Otherwise it parses the file and reports the first
// error, or a summary of the parsed statements.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/proxima-lang/proxima/internal/interner"
	"github.com/proxima-lang/proxima/internal/lexer"
	"github.com/proxima-lang/proxima/internal/parser"
	"github.com/proxima-lang/proxima/internal/parser/ast"
)

func main() {
	tokensOnly := flag.Bool("tokens", false, "dump the token sequence instead of parsing")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-tokens] <source-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	path := interner.InternPath(filename)

	if *tokensOnly {
		dumpTokens(path, string(source))
		return
	}

	p := parser.New(path, string(source))
	statements, err := p.ParseStatements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("✓ Parsing successful\n")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Statements: %d\n", len(statements))
	for i, statement := range statements {
		switch s := statement.(type) {
		case *ast.ReturnStatement:
			fmt.Printf("  %d. return statement at %s\n", i+1, s.Loc)
		case *ast.ExpressionStatement:
			fmt.Printf("  %d. expression statement at %s\n", i+1, s.Loc)
		}
	}
}

// dumpTokens lexes the source and prints one token per line. Lexing never
// fails; error tokens appear inline where they were produced.
func dumpTokens(path interner.PathID, source string) {
	for _, token := range lexer.New(path, source).Tokenize() {
		fmt.Printf("%s\t%s\n", token.Loc, token.Raw)
	}
}

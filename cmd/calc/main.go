// Command calc evaluates arithmetic expressions from the command line, a
// script file, piped input, or an interactive REPL.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"nickandperla.net/calc/pkg/calc"
)

func main() {
	var (
		evalStr    = flag.String("e", "", "Evaluate an expression and exit")
		file       = flag.String("f", "", "Evaluate a script file")
		dbPath     = flag.String("db", "", "SQLite history database path")
		noHistory  = flag.Bool("no-history", false, "Disable persistent history")
		simplified = flag.Bool("simplify", false, "Print the simplified form instead of evaluating")
		configPath = flag.String("config", "", "Config file path")
	)

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}

	opts := []calc.Option{
		calc.WithHistoryLimit(cfg.HistoryLimit),
	}
	if !*noHistory {
		opts = append(opts, calc.WithSQLiteHistory(cfg.DB))
	}

	session := calc.NewSession(opts...)
	defer session.Close()

	switch {
	case *evalStr != "":
		if *simplified {
			node, err := session.Simplify(*evalStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(node.String())
			return
		}
		evalAndPrint(session, *evalStr)

	case *file != "":
		result, err := session.EvalFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.String())

	case !term.IsTerminal(int(os.Stdin.Fd())):
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		evalAndPrint(session, string(input))

	default:
		runREPL(session, cfg)
	}
}

func evalAndPrint(session *calc.Session, input string) {
	result, err := session.Eval(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.String())
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"nickandperla.net/calc/pkg/calc"
)

func printBanner() {
	fmt.Println("calc REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  :simplify <expr>  print the simplified form")
	fmt.Println("  :vars             show bound variables")
	fmt.Println("  :history          show recent evaluations")
	fmt.Println("  :clear            clear history")
	fmt.Println("  :help             show this message")
	fmt.Println()
}

func runREPL(session *calc.Session, cfg *Config) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	completions := calc.BuiltinNames()
	line.SetCompleter(func(input string) []string {
		i := strings.LastIndexFunc(input, func(r rune) bool {
			return !isNameRune(r)
		})
		prefix, word := input[:i+1], input[i+1:]
		if word == "" {
			return nil
		}
		var out []string
		for _, name := range completions {
			if strings.HasPrefix(name, word) {
				out = append(out, prefix+name)
			}
		}
		for _, name := range session.Scope().Names() {
			if strings.HasPrefix(name, word) {
				out = append(out, prefix+name)
			}
		}
		return out
	})

	historyFile := filepath.Join(os.TempDir(), ".calc_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	printBanner()

	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if quit := runCommand(session, input); quit {
				return
			}
			continue
		}

		result, err := session.Eval(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(result.String())
	}
}

// runCommand handles a :-prefixed REPL command. It returns true when the
// REPL should exit.
func runCommand(session *calc.Session, input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case ":quit", ":exit":
		return true

	case ":help":
		printBanner()

	case ":simplify":
		if rest == "" {
			fmt.Println("usage: :simplify <expr>")
			break
		}
		node, err := session.Simplify(rest)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
		fmt.Println(node.String())

	case ":vars":
		names := session.Scope().Names()
		if len(names) == 0 {
			fmt.Println("no variables bound")
			break
		}
		for _, name := range names {
			v, _ := session.Scope().Lookup(name)
			fmt.Printf("%s = %g\n", name, v)
		}

	case ":history":
		entries, err := session.History(0)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
		if len(entries) == 0 {
			fmt.Println("no history")
			break
		}
		for _, e := range entries {
			fmt.Printf("%s = %s\n", e.Input, e.Result)
		}

	case ":clear":
		if err := session.ClearHistory(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

	default:
		fmt.Printf("unknown command %s (try :help)\n", cmd)
	}
	return false
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

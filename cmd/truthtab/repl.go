package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/truthtab/pkg/truthtab"
)

func printBanner() {
	fmt.Println("truthtab REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Operators: + OR   ^ XOR   . AND   ' NOT   ( ) grouping")
	fmt.Println("Identifiers are single letters A-Z, constants are 1 and 0.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  :save NAME EXPR   store an expression under NAME")
	fmt.Println("  :load NAME        print the table for a stored expression")
	fmt.Println("  :list             list stored expression names")
	fmt.Println("  :drop NAME        remove a stored expression")
	fmt.Println("  :quit             exit")
	fmt.Println()
}

func runREPL(engine *truthtab.Engine) {
	// Only show prompts and the banner on a real terminal; piped input
	// gets bare output.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		printBanner()
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if interactive {
				fmt.Println()
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := runCommand(engine, line); quit {
				return
			}
			continue
		}

		out, err := engine.Render(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
}

// runCommand handles a colon command and reports whether the REPL should
// exit.
func runCommand(engine *truthtab.Engine, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":q", ":quit":
		return true

	case ":save":
		if len(fields) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: :save NAME EXPR")
			return false
		}
		// Whitespace is insignificant to the tokenizer, so rejoining
		// the fields preserves the expression.
		if err := engine.Save(fields[1], strings.Join(fields[2:], " ")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		fmt.Printf("Saved %s\n", fields[1])

	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: :load NAME")
			return false
		}
		source, err := engine.Load(fields[1])
		if err != nil {
			if errors.Is(err, truthtab.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "No expression named %s\n", fields[1])
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return false
		}
		out, err := engine.Render(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		fmt.Println(out)

	case ":list":
		names, err := engine.Names()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case ":drop":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: :drop NAME")
			return false
		}
		if err := engine.Delete(fields[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		fmt.Printf("Dropped %s\n", fields[1])

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", fields[0])
	}
	return false
}

// Command truthtab prints truth tables for boolean algebra expressions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"nickandperla.net/truthtab/pkg/truthtab"
)

func main() {
	var (
		evalStr = flag.String("e", "", "Evaluate a boolean algebra expression")
		file    = flag.String("f", "", "Evaluate expressions from a file, one per line")
		dbPath  = flag.String("db", "truthtab.db", "SQLite database path for named expressions")
		lenient = flag.Bool("lenient", false, "Keep the first leftover evaluation value instead of failing")
	)

	flag.Parse()

	// Build options
	opts := []truthtab.Option{
		truthtab.WithSQLiteStore(*dbPath),
	}
	if *lenient {
		opts = append(opts, truthtab.WithLenientEval())
	}

	engine := truthtab.New(opts...)
	defer engine.Close()

	switch {
	case *evalStr != "":
		out, err := engine.Render(*evalStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)

	case *file != "":
		if err := evalFile(engine, *file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		runREPL(engine)
	}
}

// evalFile renders every expression in a file, one per line. Blank lines and
// lines starting with # are skipped.
func evalFile(engine *truthtab.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := engine.Render(line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		fmt.Println(out)
	}
	return sc.Err()
}

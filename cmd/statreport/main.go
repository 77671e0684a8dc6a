package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmx-16/arcane-conquest/internal/stats"
)

func main() {
	var path string
	var last int
	flag.StringVar(&path, "file", "gamedata.csv", "statistics CSV written by the game")
	flag.IntVar(&last, "last", 0, "only report the most recent N sessions (0 = all)")
	flag.Parse()

	if err := report(os.Stdout, path, last); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func report(out io.Writer, path string, last int) error {
	sums, err := stats.ReadFile(path)
	if err != nil {
		return err
	}
	if last > 0 && len(sums) > last {
		sums = sums[len(sums)-last:]
	}
	fmt.Fprintf(out, "=== %s ===\n", path)
	stats.Summarize(sums).Print(out)
	return nil
}

// Command algex is the interactive simplifier REPL: it reads one
// expression per line, searches for a minimal-measure equivalent, and
// prints the search's progress and result.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jwalk/algex/internal/display"
	"github.com/jwalk/algex/internal/obslog"
	"github.com/jwalk/algex/pkg/parser"
	"github.com/jwalk/algex/pkg/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "algex",
		Short: "Interactively simplify algebraic expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				obslog.SetLevel(logrus.DebugLevel)
			}
			return runREPL()
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging (per-depth search progress is logged at info level regardless)")
	return cmd
}

// runREPL drives the read-parse-search-print loop until EOF. A line that
// fails to parse prints an error and the loop continues with the next
// line; EOF ends the loop cleanly.
func runREPL() error {
	rl, err := readline.New("Enter a mathematical expression: ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		e, err := parser.Parse(line)
		if err != nil {
			display.ParseError(err)
			continue
		}
		display.ParsedExpr(e)

		result := search.Run(e)
		display.Graph(result.Graph)
		display.Summary(result)
	}
}

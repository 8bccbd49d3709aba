// Command sqltoast is a demonstration CLI over the sqltoast library:
// it parses, analyzes, and renders SQL from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sqltoast",
		Short: "Parse, analyze, and render SQL-92 statements",
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oarkflow/sqltoast"
	"github.com/oarkflow/sqltoast/internal/applog"
)

func newParseCmd() *cobra.Command {
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <sql-or-path>",
		Short: "Parse one or more SQL statements and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := sqlArg(args)
			if err != nil {
				return err
			}
			start := time.Now()
			if all {
				p := sqltoast.NewString(sql, sqltoast.ParseOptions{})
				stmts, res := p.All()
				if res.Code != sqltoast.CodeSuccess {
					applog.WithError(fmt.Errorf("%s", formatErrors(res))).Error("parse failed")
					return fmt.Errorf("parse error: %s: %w", formatErrors(res), errParseFailed)
				}
				applog.Infof("statements=%d duration=%s", len(stmts), time.Since(start))
				for i, s := range stmts {
					printStatement(cmd, i, s, asJSON)
				}
				return nil
			}
			res := sqltoast.ParseStatement(sql)
			if res.Code != sqltoast.CodeSuccess {
				applog.WithError(fmt.Errorf("%s", formatErrors(res))).Error("parse failed")
				return fmt.Errorf("parse error: %s: %w", formatErrors(res), errParseFailed)
			}
			applog.Infof("statements=1 duration=%s", time.Since(start))
			printStatement(cmd, 0, res.Statement, asJSON)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "parse every statement in the input instead of just the first")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed AST as JSON instead of a one-line summary")
	return cmd
}

func printStatement(cmd *cobra.Command, index int, stmt any, asJSON bool) {
	if asJSON {
		b, err := json.MarshalIndent(stmt, "", "  ")
		if err != nil {
			cmd.PrintErrf("statement %d: marshal error: %v\n", index, err)
			return
		}
		cmd.Println(string(b))
		return
	}
	cmd.Printf("statement %d: %T\n", index, stmt)
}

func formatErrors(res *sqltoast.ParseResult) string {
	if len(res.Errors) == 0 {
		return "parse failed"
	}
	return res.Errors[0].Error()
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oarkflow/sqltoast"
	"github.com/oarkflow/sqltoast/internal/applog"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <sql-or-path>",
		Short: "Run static analysis checks over SQL statements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := sqlArg(args)
			if err != nil {
				return err
			}
			start := time.Now()
			report := sqltoast.Analyze(sql)
			applog.Infof("statements=%d duration=%s", report.StatementCount, time.Since(start))
			if !report.Valid {
				applog.WithError(fmt.Errorf("analysis found a parse error")).Error("analyze failed")
			}
			cmd.Print(report.String())
			if !report.Valid {
				return fmt.Errorf("analysis reported a parse error: %w", errParseFailed)
			}
			return nil
		},
	}
	return cmd
}

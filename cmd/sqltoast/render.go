package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oarkflow/sqltoast"
	"github.com/oarkflow/sqltoast/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <sql-or-path>",
		Short: "Parse SQL and print it back through the canonical renderer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := sqlArg(args)
			if err != nil {
				return err
			}
			p := sqltoast.NewString(sql, sqltoast.ParseOptions{})
			stmts, res := p.All()
			if res.Code != sqltoast.CodeSuccess {
				return fmt.Errorf("parse error: %s: %w", formatErrors(res), errParseFailed)
			}
			out, err := render.RenderAll(stmts)
			if err != nil {
				return err
			}
			cmd.Println(out + ";")
			return nil
		},
	}
	return cmd
}

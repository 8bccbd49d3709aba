package main

import "github.com/spf13/cobra"

const buildVersion = "sqltoast dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(buildVersion)
		},
	}
}

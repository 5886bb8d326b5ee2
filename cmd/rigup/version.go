package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rigup/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rigup %s (%s)\n", version.Version, version.Commit)
		},
	}
}

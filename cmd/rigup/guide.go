package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := glamour.Render(guideMarkdown, "auto")
			if err != nil {
				// fall back to the raw markdown rather than failing
				rendered = guideMarkdown
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	graphbridge "github.com/plexgraph/graph-bridge"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print library build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := graphbridge.BuildInfo()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, a.styled(headerStyle, info.Name))
			fmt.Fprintf(out, "  version    %s\n", info.Version)
			fmt.Fprintf(out, "  go         %s\n", info.GoVersion)
			if info.Revision != "" {
				fmt.Fprintf(out, "  revision   %s\n", info.Revision)
			}
			if info.BuildTime != "" {
				fmt.Fprintf(out, "  built      %s\n", info.BuildTime)
			}
			return nil
		},
	}
}

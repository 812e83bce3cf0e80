package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered native type identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.styled(headerStyle, "registered types"))
			for _, id := range a.reg.TypeIDs() {
				fmt.Fprintf(out, "  %s\n", id)
			}
			fmt.Fprintln(out, a.styled(dimStyle, fmt.Sprintf("%d converters", a.reg.Len())))
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the router models with a known configuration magic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tMAGIC")
			for _, m := range netgear.Models() {
				fmt.Fprintf(w, "%s\t%08x\n", m.Name, m.Magic)
			}
			return w.Flush()
		},
	}
}

func newMagicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magic NAME",
		Short: "Compute the configuration magic of a router model name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			magic := netgear.DeriveMagic(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%08x %s\n", magic, netgear.ModelName(magic))
			return nil
		},
	}
}

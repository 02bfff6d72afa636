package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/skinfinder/internal/catalog"
)

func newConcernsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concerns",
		Short: "List the concern ids accepted by the active flavor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flavor, err := cfg.FlavorValue()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tLABEL\n")
			for _, c := range catalog.Concerns(flavor) {
				fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Label)
			}
			return w.Flush()
		},
	}
}

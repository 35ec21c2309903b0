package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/livecheck/internal/core/domain"
)

func (c *CLI) newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the known livecheck strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, s := range domain.Strategies() {
				if _, err := fmt.Fprintln(w, s.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

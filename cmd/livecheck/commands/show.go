package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// Output formats accepted by the show command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [files...]",
		Short: "Show the livecheck configuration of package definitions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			digest, _ := cmd.Flags().GetBool("digest")

			var render renderFunc
			switch format {
			case formatText:
				render = renderText
			case formatJSON:
				render = renderJSON
			case formatYAML:
				render = renderYAML
			default:
				return zerr.With(zerr.New("unsupported output format"), "format", format)
			}

			jobs, _ := cmd.Flags().GetInt("jobs")
			if jobs < 0 {
				return zerr.With(zerr.New("jobs must not be negative"), "jobs", jobs)
			}
			c.app.WithConcurrency(jobs)

			results, err := c.app.Show(cmd.Context(), args)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), results, digest)
		},
	}
	cmd.Flags().StringP("format", "o", formatText, "Output format: text, json or yaml")
	cmd.Flags().IntP("jobs", "j", 0, "Number of definitions to load at once (default: number of CPUs)")
	cmd.Flags().Bool("digest", false, "Include a fingerprint of each livecheck configuration")
	return cmd
}

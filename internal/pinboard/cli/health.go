package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up and ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ready, err := st.client().GetReadiness(cmd.Context())
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), ready)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s (version %s, up %s)\n", st.cfg.Server, ready.Status, ready.Version, ready.Uptime)
			if ready.Checks != nil {
				fmt.Fprintf(out, "database: %s\nsigner: %s\n", ready.Checks.Database, ready.Checks.Signer)
			}
			return nil
		},
	}
}

package cli_cmds

import (
	"fmt"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli"
	"github.com/spf13/cobra"
)

func NewVersion(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the ledger service",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", params.Use, cli.VersionInfo())
		},
	}
}

package cli_cmds

import (
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli"
	"github.com/spf13/cobra"
)

func GeneratePalette(params *cli.CmdParams) []*cobra.Command {
	return []*cobra.Command{
		NewServe(params),
		NewVersion(params),
	}
}

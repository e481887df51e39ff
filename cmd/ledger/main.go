package main

import (
	"context"
	"fmt"
	"os"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli/cli_cmds"
)

func main() {
	params := &cli.CmdParams{
		Use:   "ledger",
		Short: "Minimal bank ledger",
		Long:  "Ledger service for banks, accounts and transfers between accounts.",
	}
	params.Palette = cli_cmds.GeneratePalette(params)

	if err := cli.NewRoot(params).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "ledger:", err)
		os.Exit(1)
	}
}

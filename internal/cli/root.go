package cli

import "github.com/spf13/cobra"

// NewRoot creates the root command and attaches the palette to it.
func NewRoot(params *CmdParams) *cobra.Command {
	root := &cobra.Command{
		Use:           params.Use,
		Short:         params.Short,
		Long:          params.Long,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&params.ConfigFile, "config", "", "config file (default is ./config.yaml or /etc/ledger/config.yaml)")
	root.AddCommand(params.Palette...)

	return root
}

package cli

import "github.com/spf13/cobra"

// CmdParams carries what subcommands need from the root. ConfigFile is
// bound to the persistent --config flag and is only meaningful once the
// flags have been parsed.
type CmdParams struct {
	ConfigFile string
	Palette    []*cobra.Command
	Use        string
	Short      string
	Long       string
}

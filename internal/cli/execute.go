package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs root with args and returns everything it printed.
func ExecuteCommand(ctx context.Context, root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	return buf.String(), err
}

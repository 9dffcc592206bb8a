package main

import (
	"io"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// newRootCmd builds the command tree. Streams are injected so tests can
// drive the CLI without touching the process's stdio.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "faasdoc",
		Short:         "Compose assessment documents from FAAS records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newComposeCmd())
	return root
}

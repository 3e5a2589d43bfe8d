package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog-web",
		Short:         "Server-rendered web client for the blog API",
		SilenceUsage:  true,
	}
	root.AddCommand(newServeCmd(), newPreviewCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cmd implements the neumorphic CLI commands.
//
// The command structure follows standard Go CLI patterns: a cobra root
// command dispatching to subcommands, with a context-attached logger
// configured by the --verbose flag.
package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Execute runs the neumorphic CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "neumorphic",
		Short:        "Render neumorphic shadow effects to PNG images",
		Long:         "neumorphic renders soft dual-shadow (neumorphic) surfaces — flat or pressed, rounded or oval — using the library's software rasterizer.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCommand())

	return root.Execute()
}

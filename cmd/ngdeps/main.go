// Command ngdeps prints AngularJS module dependencies of JavaScript/JSX sources.
//
// Usage:
//
//	ngdeps analyze ./src
//	ngdeps analyze --format yaml app.js lib/
//	ngdeps analyze --config ngdeps.yaml mem://localhost/app
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// verbose holds the flag value shared by all commands.
var verbose bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ngdeps",
		Short:         "Extract AngularJS module dependencies from JavaScript sources",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	})
	return root
}

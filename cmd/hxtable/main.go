package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hxtable",
		Short: "Headless table with server-rendered row hover state",
		Long: `hxtable serves a demo table whose rows track hovered state on the
server. Each row toggles its hovered flag on mouseenter and mouseleave;
the Actions column renders its button only while the row is hovered.

Configuration is read from $HXTABLE_CONFIG (TOML) and HXTABLE_* env vars.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

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
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecolab",
		Short: "Interactive economics teaching tools",
		Long: `ecolab serves interactive economics teaching tools over WebSocket:

  • IS-LM equilibrium explorer with linked goods-market, money-market,
    and IS-LM chart views
  • Central Limit Theorem demo: Monte-Carlo sampling distribution of
    the mean with a theoretical normal overlay

Parameter changes from the client are validated, recomputed through a
memoized derivation graph, and pushed back as JSON chart scenes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

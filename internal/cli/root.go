// Package cli implements the salesdesk command-line interface using Cobra.
// The interactive shell drives one sales service for its whole lifetime; the
// one-shot commands build a fresh service per invocation.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagKind   string
	flagNoDemo bool
)

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "Monthly sales, targets, regions and orders",
	Long: `salesdesk manages monthly sales figures and targets on a choice of
backing structure (array, singly or doubly linked list), assigns months to
regions, runs an order queue and evaluates arithmetic expressions.

Nothing is persisted: every run starts from the configured demo data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagKind, "kind", "", "repository kind: array, singly or doubly (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoDemo, "no-demo", false, "start without demo data")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

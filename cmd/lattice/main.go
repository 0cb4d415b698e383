package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-viz/lattice/cmd/lattice/commands"
	"github.com/lattice-viz/lattice/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice - interactive graph viewport and state synchronization",
	Long: `Lattice hosts interactive graph sessions: documents describe nodes and
edges, the view engine maps pointer input to selection, dragging and
navigation, and every mutation streams to subscribers as change records.

Available commands:
  serve   - Start the WebSocket session host
  doc     - Manage stored graph documents
  fit     - Compute the fit-to-screen transform for a document
  config  - Show the resolved configuration
  version - Show version information

Examples:
  lattice doc import ring.toml   # Validate and store a document
  lattice serve                  # Start the session host
  lattice fit ring -W 1920 -H 1080`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.DocCmd)
	rootCmd.AddCommand(commands.FitCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

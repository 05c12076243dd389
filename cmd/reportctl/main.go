// reportctl seeds, inspects and reports on the question stores offline.
//
// Usage:
//
//	reportctl seed questions.json
//	reportctl inspect <room>
//	reportctl top3 <room>
//	reportctl top-slide <room> [--latest-first]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var config Config

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Offline tooling for the question report stores",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		config = cfg
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(top3Cmd)
	rootCmd.AddCommand(topSlideCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

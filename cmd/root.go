/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "answer-engine",
	Short: "Customer support retrieval and answer arbitration server",
	Long: `answer-engine serves the storefront support widget: it retrieves
evidence from the knowledge corpus, arbitrates every answer through
deterministic rules and a grounded completion, and records the
conversation transcripts.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file")
}

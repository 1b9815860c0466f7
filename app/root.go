// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "randtok",
	Short: "randtok generates random tokens from a configurable alphabet",
	Long: `randtok generates random tokens from a configurable alphabet.
It can print tokens to stdout or run a small http service handing them out.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Package main provides the entry point for the lean_style source linter.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lean_style",
	Short: "Lean source style linter",
	Long: "lean_style checks Lean source files for copyright headers, import layout, module docstrings, " +
		"line length and a few forbidden constructs, reconciling the findings with an exceptions baseline.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

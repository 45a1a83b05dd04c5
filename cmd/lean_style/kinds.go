package main

import (
	"fmt"

	"github.com/jonathan/lean-style/internal/types"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the violation codes and their messages",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, kind := range types.AllKinds {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", kind, kind.Message()); err != nil {
			return err
		}
	}
	return nil
}

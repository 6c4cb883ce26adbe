package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:   "contains <text> <value>",
	Short: "Check whether a value lies within a range",
	Args:  cobra.ExactArgs(2),
	RunE:  runContains,
}

func runContains(cmd *cobra.Command, args []string) error {
	contains, err := rangeContains(rangeKind, args[0], args[1])
	if err != nil {
		log.Errorw("failed to check range", "text", args[0], "value", args[1], "error", err)

		return err
	}
	log.Debugw("checked range", "text", args[0], "value", args[1], "contains", contains)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), contains)

	return err
}

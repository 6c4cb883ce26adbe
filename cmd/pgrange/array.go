package main

import (
	"github.com/spf13/cobra"

	"github.com/iotaledger/pgrange/pgrange"
)

var arrayCmd = &cobra.Command{
	Use:   "array <lower> <upper> [<lowerInclusive> <upperInclusive>]",
	Short: "Build a range from its tuple representation",
	Long: `Build a range from its bounds and optionally their inclusivity and print it in the configured output format.
An empty bound ("") is unbounded. Both bounds are inclusive unless stated otherwise.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != pgrange.ArrayLength {
			return cobra.ExactArgs(pgrange.ArrayLength)(cmd, args)
		}

		return nil
	},
	RunE: runArray,
}

func runArray(cmd *cobra.Command, args []string) error {
	tuple := []any{args[0], args[1], true, true}
	if len(args) == pgrange.ArrayLength {
		tuple[2], tuple[3] = args[2], args[3]
	}

	output, err := rangeFromArray(rangeKind, tuple)
	if err != nil {
		log.Errorw("failed to build range", "tuple", tuple, "error", err)

		return err
	}
	log.Debugw("built range", "tuple", tuple, "kind", rangeKind)

	return writeRange(cmd.OutOrStdout(), outputFormat, output)
}

package main

import (
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Parse range text",
	Long: `Parse one or more range texts such as "[1,10)" or "(,5.5]" and print them in the configured output format.
Empty range text prints as an unbounded range, or as null if --range.nilOnEmpty is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, text := range args {
		output, err := parseRange(rangeKind, text, nilOnEmpty)
		if err != nil {
			log.Errorw("failed to parse range", "text", text, "error", err)

			return err
		}
		log.Debugw("parsed range", "text", text, "kind", rangeKind)

		if err := writeRange(out, outputFormat, output); err != nil {
			return err
		}
	}

	return nil
}

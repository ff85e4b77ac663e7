package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:               "dump <example>",
	Short:             "Write the encoded wire form of an example",
	Long:              `Encodes the named example without contacting the engine. Writes to stdout unless --out is given.`,
	Args:              exampleArg,
	ValidArgsFunction: completeExamples,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := state.docs.Build(args[0])
		if err != nil {
			return err
		}
		data, err := doc.Marshal()
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" || outPath == "-" {
			if isTerminal(cmd.OutOrStdout()) {
				return errors.New("refusing to write binary data to a terminal, use --out or a pipe")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		state.logger.Info("Writing wire form", "example", args[0], "bytes", len(data), "path", outPath)
		return os.WriteFile(outPath, data, 0o644)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
}

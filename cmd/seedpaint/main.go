// Command seedpaint renders, replays, and previews seedpaint sketches.
//
//	seedpaint render --sketch lines --set seed=12 --set lines=10 --out renders/
//	seedpaint replay archive/lines.json
//	seedpaint params --sketch rays
//	seedpaint view --sketch lines
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/seedpaint"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "seedpaint",
		Short:        "Reproducible procedural images",
		Long:         "seedpaint renders sketches deterministically: the same settings give the same image on every machine.",
		SilenceUsage: true,
	}
	root.AddCommand(renderCommand(), replayCommand(), paramsCommand(), viewCommand(), sketchesCommand())
	return root
}

func sketchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sketches",
		Short: "List registered sketches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range seedpaint.Sketches() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

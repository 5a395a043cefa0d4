package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/seedpaint"
	"github.com/spf13/cobra"
)

func replayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Re-run a replay script and check its digests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(args[0], cmd.OutOrStdout())
		},
	}
}

func replay(path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read replay: %w", err)
	}
	script, err := seedpaint.LoadReplay(data)
	if err != nil {
		return err
	}
	gen, err := newGenerator(Config{Sketch: script.Sketch, Width: script.Width, Height: script.Height},
		seedpaint.NewRecorder(script.Width, script.Height))
	if err != nil {
		return err
	}
	defer gen.Destroy()

	renders, runErr := script.Run(gen)
	for _, r := range renders {
		fmt.Fprintf(stdout, "%s seed=%d strokes=%d digest=%s\n",
			r.Label, int64(r.Result.Seed), r.Result.Strokes, seedpaint.FormatDigest(r.Result.Digest))
	}
	return runErr
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/seedpaint"
	"github.com/spf13/cobra"
)

func renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sketch to PNG without a window",
		Long: `Render a sketch on the CPU and write it as PNG. When --out is a directory
(or ends in a slash) the file is named after the sketch, seed and digest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getConfig(cmd, "out")
			if err != nil {
				return err
			}
			return render(conf, cmd.OutOrStdout())
		},
	}
	defineFlags(cmd)
	cmd.Flags().StringP("out", "o", "renders/", "output file or directory")
	return cmd
}

// render generates one image headlessly and writes it to conf.Out.
func render(conf Config, stdout io.Writer) error {
	raster := seedpaint.NewRaster(conf.Width, conf.Height)
	gen, err := newGenerator(conf, seedpaint.Tee(raster, seedpaint.NewRecorder(conf.Width, conf.Height)))
	if err != nil {
		return err
	}
	defer gen.Destroy()

	res, err := gen.Generate()
	if err != nil {
		return err
	}

	path := conf.Out
	if path == "" || strings.HasSuffix(path, "/") || isDir(path) {
		path = filepath.Join(path, seedpaint.ExportName(res))
	}
	if err := seedpaint.WritePNG(path, raster.Image()); err != nil {
		return err
	}
	settings, err := gen.Settings().MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s %s seed=%d strokes=%d draws=%d digest=%s\n",
		path, settings, int64(res.Seed), res.Strokes, res.Draws, seedpaint.FormatDigest(res.Digest))
	return err
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

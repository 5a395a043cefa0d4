package main

import (
	"github.com/phanxgames/seedpaint"
	"github.com/spf13/cobra"
)

func viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window to explore a sketch's settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getConfig(cmd, "out", "hud")
			if err != nil {
				return err
			}
			return view(conf)
		},
	}
	defineFlags(cmd)
	cmd.Flags().StringP("out", "o", "renders", "directory for PNGs saved with S")
	cmd.Flags().Bool("hud", true, "show the settings overlay")
	return cmd
}

func view(conf Config) error {
	sk, err := lookupSketch(conf.Sketch)
	if err != nil {
		return err
	}
	schema, err := newSchema(sk)
	if err != nil {
		return err
	}
	if err := applySettings(conf, schema); err != nil {
		return err
	}
	settings, err := schema.MarshalJSON()
	if err != nil {
		return err
	}
	return seedpaint.Run(sk, seedpaint.RunConfig{
		Width:     conf.Width,
		Height:    conf.Height,
		Settings:  settings,
		ExportDir: conf.Out,
		ShowHUD:   conf.HUD,
		Debug:     conf.Debug,
	})
}

func newSchema(sk seedpaint.Sketch) (*seedpaint.Schema, error) {
	return seedpaint.NewSchema(sk.Params()...)
}

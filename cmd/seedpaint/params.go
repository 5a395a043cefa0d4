package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func paramsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Describe a sketch's settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getConfig(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return params(conf, asJSON, cmd.OutOrStdout())
		},
	}
	defineFlags(cmd)
	cmd.Flags().Bool("json", false, "print current values as a settings JSON object")
	return cmd
}

func params(conf Config, asJSON bool, stdout io.Writer) error {
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

	if asJSON {
		data, err := schema.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", data)
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tMIN\tMAX\tSTEP\tDEFAULT\tVALUE")
	for _, p := range schema.Params() {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\t%g\n", p.Name, p.Kind, p.Min, p.Max, p.Step, p.Default, p.Value)
	}
	return tw.Flush()
}

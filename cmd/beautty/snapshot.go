package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"beautty"
)

var (
	snapWidth, snapHeight int
	snapANSI              bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <example>",
	Short: "Render one frame of an example to stdout",
	Args:  exampleArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildExample(args[0])
		if err != nil {
			return err
		}
		w, h := viewport(snapWidth, snapHeight)
		cfg.Engine().Calculate(d.Tree, w, h)

		buf := beautty.NewBuffer(w, h)
		beautty.Draw(d.Tree, buf)
		if snapANSI {
			_, err = fmt.Fprint(cmd.OutOrStdout(), buf.ANSI())
		} else {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), buf.StringTrimmed())
		}
		return err
	},
}

func init() {
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 0, "viewport width (default from config, 80)")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 0, "viewport height (default from config, 24)")
	snapshotCmd.Flags().BoolVar(&snapANSI, "ansi", false, "keep colors and emphasis as escape sequences")
	rootCmd.AddCommand(snapshotCmd)
}

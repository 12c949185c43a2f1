package main

import (
	"github.com/spf13/cobra"

	"beautty/inspect"
)

var layoutWidth, layoutHeight int

var layoutCmd = &cobra.Command{
	Use:   "layout <example>",
	Short: "Print the computed layout tree of an example",
	Args:  exampleArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildExample(args[0])
		if err != nil {
			return err
		}
		w, h := viewport(layoutWidth, layoutHeight)
		cfg.Engine().Calculate(d.Tree, w, h)
		return inspect.Write(cmd.OutOrStdout(), d.Tree)
	},
}

func init() {
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "viewport width (default from config, 80)")
	layoutCmd.Flags().IntVar(&layoutHeight, "height", 0, "viewport height (default from config, 24)")
	rootCmd.AddCommand(layoutCmd)
}

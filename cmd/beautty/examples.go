package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"beautty/internal/examples"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the bundled examples",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := lipgloss.NewRenderer(cmd.OutOrStdout())
		name := r.NewStyle().Bold(true).Width(10)
		desc := r.NewStyle().Foreground(lipgloss.Color("8"))
		for _, e := range examples.All() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name.Render(e.Name)+desc.Render(e.Description)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

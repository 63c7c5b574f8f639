package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Built-in slider presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tWARMTH\tSATURATION\tCONTRAST\tACCESSIBILITY\tDESCRIPTION")
		for _, p := range themes.ListPresets() {
			s := p.Sliders
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%s\n",
				p.Name, s.Warmth, s.Saturation, s.Contrast, s.Accessibility, p.Description)
		}
		w.Flush()
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	rootCmd.AddCommand(presetCmd)
}

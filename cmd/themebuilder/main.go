// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "themebuilder",
	Short: "Themebuilder - parametric OKLCH color themes",
	Long: `Themebuilder turns four sliders (warmth, saturation, contrast and
accessibility) into a sixteen-color OKLCH palette.

It can print palettes in the terminal, serve an interactive builder page and
JSON API, and keep a small library of named themes with shareable links.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

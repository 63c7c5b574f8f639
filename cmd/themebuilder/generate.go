package main

import (
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a palette from slider values",
	Long: `Generate a sixteen-color palette and print it.

Values outside 0-100 are clamped. Formats: swatch (default), json, css,
vars (custom properties only), oklch and hex.`,
	Example: `  themebuilder generate --warmth 20 --saturation 70
  themebuilder generate --preset navy --format css > theme.css`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			exitWithError(err)
		}

		sliders, err := slidersFromFlags(cmd)
		if err != nil {
			exitWithError(err)
		}

		gen, err := newGenerator()
		if err != nil {
			exitWithError(err)
		}

		p, err := gen.Generate(sliders)
		if err != nil {
			exitWithError(err)
		}
		if p.Clamped {
			warn("Warning: slider values were clamped to 0-100\n")
		}

		format, _ := cmd.Flags().GetString("format")
		if err := renderPalette(os.Stdout, p, format); err != nil {
			exitWithError(err)
		}

		if audit, _ := cmd.Flags().GetBool("audit"); audit {
			os.Stdout.WriteString("\n")
			if err := renderAudit(os.Stdout, p); err != nil {
				exitWithError(err)
			}
		}
	},
}

func init() {
	addSliderFlags(generateCmd)
	generateCmd.Flags().StringP("format", "f", FormatSwatch, "Output format: swatch, json, css, vars, oklch, hex")
	generateCmd.Flags().Bool("audit", false, "Also print WCAG contrast for the preview pairs")
	rootCmd.AddCommand(generateCmd)
}

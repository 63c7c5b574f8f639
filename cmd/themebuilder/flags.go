package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/config"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// addSliderFlags registers --warmth, --saturation, --contrast,
// --accessibility and --preset on cmd.
func addSliderFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("warmth", "w", 50, "Warmth 0-100 (0 cool, 100 warm)")
	cmd.Flags().Float64P("saturation", "s", 50, "Saturation 0-100")
	cmd.Flags().Float64P("contrast", "c", 50, "Contrast 0-100")
	cmd.Flags().Float64P("accessibility", "a", 50, "Accessibility bias 0-100")
	cmd.Flags().StringP("preset", "p", "", "Start from a named preset")
}

// slidersFromFlags starts from the preset (or configured defaults) and
// applies every slider flag that was set explicitly.
func slidersFromFlags(cmd *cobra.Command) (themes.Sliders, error) {
	base := config.DefaultSliders()

	presetName, _ := cmd.Flags().GetString("preset")
	if presetName != "" {
		preset := themes.GetPreset(presetName)
		if preset == nil {
			return themes.Sliders{}, fmt.Errorf("unknown preset %q (see 'themebuilder preset list')", presetName)
		}
		base = preset.Sliders
	}

	for name, dst := range map[string]*float64{
		"warmth":        &base.Warmth,
		"saturation":    &base.Saturation,
		"contrast":      &base.Contrast,
		"accessibility": &base.Accessibility,
	} {
		if cmd.Flags().Changed(name) {
			v, err := cmd.Flags().GetFloat64(name)
			if err != nil {
				return themes.Sliders{}, err
			}
			*dst = v
		}
	}
	return base, nil
}

// newGenerator builds a generator from the configured tuning
func newGenerator() (*themes.Generator, error) {
	tuning, err := config.LoadTuning()
	if err != nil {
		return nil, err
	}
	return themes.NewGenerator(tuning), nil
}

// SPDX-License-Identifier: MIT
package themes

import (
	"math"
)

// Coordinates are the intermediate values derived from the sliders.
type Coordinates struct {
	HueBase      float64
	NeutralHue   float64
	PrimaryHue   float64
	SecondaryHue float64

	ChromaMultiplier    float64
	ContrastFactor      float64
	AccessibilityFactor float64

	NeutralChroma float64
	UIChroma      float64
	AccentChroma  float64

	// Accessibility bounds picked by the step on AccessibilityFactor.
	TextMin float64
	BgMax   float64
}

// Generator maps sliders to palettes using a fixed Tuning. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	tuning Tuning
}

// NewGenerator returns a generator for the given tuning.
func NewGenerator(t Tuning) *Generator {
	return &Generator{tuning: t}
}

// Tuning returns a copy of the generator's coefficients.
func (g *Generator) Tuning() Tuning {
	return g.tuning
}

var defaultGenerator = NewGenerator(DefaultTuning())

// GenerateTheme runs the default tuning over the four slider values.
func GenerateTheme(warmth, saturation, contrast, accessibility float64) (*Palette, error) {
	return defaultGenerator.Generate(Sliders{
		Warmth:        warmth,
		Saturation:    saturation,
		Contrast:      contrast,
		Accessibility: accessibility,
	})
}

// Derive computes the intermediate coordinates for already-clamped sliders.
func (g *Generator) Derive(s Sliders) Coordinates {
	t := g.tuning
	hueBase := s.Warmth * t.HueScale

	c := Coordinates{
		HueBase:      hueBase,
		NeutralHue:   hueBase,
		PrimaryHue:   hueBase,
		SecondaryHue: math.Mod(hueBase+t.SecondaryHueOffset, 360),

		ChromaMultiplier:    s.Saturation / 100,
		ContrastFactor:      s.Contrast / 100,
		AccessibilityFactor: s.Accessibility / 100,
	}
	c.NeutralChroma = t.NeutralChroma.at(c.ChromaMultiplier)
	c.UIChroma = t.UIChroma.at(c.ChromaMultiplier)
	c.AccentChroma = t.AccentChroma.at(c.ChromaMultiplier)

	bounds := t.Accessibility.Relaxed
	if c.AccessibilityFactor > t.Accessibility.Threshold {
		bounds = t.Accessibility.Strict
	}
	c.TextMin = bounds.TextMin
	c.BgMax = bounds.BgMax
	return c
}

// Generate validates and clamps the sliders, then builds the 16-role palette.
// It fails only with ErrInvalidInput.
func (g *Generator) Generate(s Sliders) (*Palette, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	clamped := !s.InRange()
	s = s.Clamp()

	t := g.tuning
	c := g.Derive(s)
	cf, af := c.ContrastFactor, c.AccessibilityFactor

	bgDark := t.Background.Dark.at(1-cf, af)
	bgBase := t.Background.Base.at(cf, af)
	bgLight := t.Background.Light.at(cf, af)

	textLight := t.Text.Light.at(cf, af)
	textBase := t.Text.Base.at(cf, af)
	textDark := t.Text.Dark.at(cf, af)

	borderLight := t.Border.Light.at(cf, af)
	borderBase := t.Border.Base.at(cf, af)
	borderDark := t.Border.Dark.at(cf, af)

	n := c.NeutralChroma
	rc := t.Chroma

	raw := []Swatch{
		{Role: RoleBgDark, Raw: OKLCH{math.Max(bgDark, t.BgDarkFloor), n * rc.BgDark, c.NeutralHue}},
		{Role: RoleBg, Raw: OKLCH{math.Min(bgBase, c.BgMax), n * rc.Bg, c.NeutralHue}},
		{Role: RoleBgLight, Raw: OKLCH{math.Min(bgLight, c.BgMax+t.BgLightHeadroom), n * rc.BgLight, c.NeutralHue}},

		{Role: RoleTextLight, Raw: OKLCH{textLight, n * rc.TextLight, c.NeutralHue}},
		{Role: RoleText, Raw: OKLCH{math.Max(textBase, c.TextMin), n * rc.Text, c.NeutralHue}},
		{Role: RoleTextDark, Raw: OKLCH{math.Max(textDark, c.TextMin-t.TextDarkSlack), n * rc.TextDark, c.NeutralHue}},

		// Highlight follows the unclamped base background.
		{Role: RoleHighlight, Raw: OKLCH{bgBase - t.HighlightOffset, n * rc.Highlight, c.PrimaryHue}},

		{Role: RoleBorderLight, Raw: OKLCH{borderLight, n * rc.BorderLight, c.NeutralHue}},
		{Role: RoleBorder, Raw: OKLCH{borderBase, n * rc.Border, c.NeutralHue}},
		{Role: RoleBorderDark, Raw: OKLCH{borderDark, n * rc.BorderDark, c.NeutralHue}},

		{Role: RolePrimary, Raw: OKLCH{t.Primary.at(cf, af), c.UIChroma * rc.Primary, c.PrimaryHue}},
		{Role: RoleSecondary, Raw: OKLCH{t.Secondary.at(cf, af), c.UIChroma * rc.Secondary, c.SecondaryHue}},

		{Role: RoleDanger, Raw: g.status(t.Danger, c)},
		{Role: RoleWarning, Raw: g.status(t.Warning, c)},
		{Role: RoleSuccess, Raw: g.status(t.Success, c)},
		{Role: RoleInfo, Raw: g.status(t.Info, c)},
	}
	for i := range raw {
		raw[i].Value = raw[i].Raw.String()
	}
	return newPalette(s, clamped, raw), nil
}

func (g *Generator) status(st StatusTuning, c Coordinates) OKLCH {
	var base float64
	switch st.Source {
	case ChromaNeutral:
		base = c.NeutralChroma
	case ChromaUI:
		base = c.UIChroma
	default:
		base = c.AccentChroma
	}
	return OKLCH{
		L: st.Lightness.at(c.ContrastFactor, c.AccessibilityFactor),
		C: base * st.Scale,
		H: st.Hue,
	}
}

// SPDX-License-Identifier: MIT
package themes

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerate(t *testing.T, w, s, c, a float64) *Palette {
	t.Helper()
	p, err := GenerateTheme(w, s, c, a)
	require.NoError(t, err)
	require.Equal(t, 16, p.Len())
	return p
}

func parsedRole(t *testing.T, p *Palette, role string) OKLCH {
	t.Helper()
	v, ok := p.Get(role)
	require.True(t, ok, "missing role %s", role)
	o, err := ParseOKLCH(v)
	require.NoError(t, err)
	return o
}

func TestGenerateThemeHasAllRolesInOrder(t *testing.T) {
	p := mustGenerate(t, 50, 50, 50, 50)

	var got []string
	for _, sw := range p.Swatches() {
		got = append(got, sw.Role)
	}
	assert.Equal(t, []string{
		"bg-dark", "bg", "bg-light", "text-light", "text", "text-dark",
		"highlight", "border-light", "border", "border-dark",
		"primary", "secondary", "danger", "warning", "success", "info",
	}, got)
}

func TestGenerateThemeMidpoint(t *testing.T) {
	g := NewGenerator(DefaultTuning())
	c := g.Derive(Sliders{Warmth: 50, Saturation: 50, Contrast: 50, Accessibility: 50})

	assert.InDelta(t, 180, c.HueBase, 1e-9)
	assert.InDelta(t, 0.5, c.ChromaMultiplier, 1e-12)
	assert.InDelta(t, 0.5, c.ContrastFactor, 1e-12)
	assert.InDelta(t, 0.5, c.AccessibilityFactor, 1e-12)
	assert.InDelta(t, 240, c.SecondaryHue, 1e-9)
	// 0.5 is not above the threshold.
	assert.Equal(t, 0.15, c.TextMin)
	assert.Equal(t, 0.98, c.BgMax)

	p := mustGenerate(t, 50, 50, 50, 50)
	primary, _ := p.Swatch(RolePrimary)
	assert.InDelta(t, 0.55, primary.Raw.L, 1e-12)
	assert.Equal(t, "oklch(0.550 0.140 180.0)", primary.Value)

	expected := map[string]string{
		RoleBgDark:    "oklch(0.160 0.010 180.0)",
		RoleBg:        "oklch(0.920 0.006 180.0)",
		RoleBgLight:   "oklch(0.980 0.004 180.0)",
		RoleHighlight: "oklch(0.890 0.040 180.0)",
		RoleSecondary: "oklch(0.600 0.126 240.0)",
		RoleInfo:      "oklch(0.580 0.119 240.0)",
	}
	for role, want := range expected {
		got, _ := p.Get(role)
		assert.Equal(t, want, got, role)
	}
}

func TestGenerateThemeAllZero(t *testing.T) {
	p := mustGenerate(t, 0, 0, 0, 0)

	bgDark, _ := p.Swatch(RoleBgDark)
	assert.InDelta(t, 0.20, bgDark.Raw.L, 1e-12)
	assert.Contains(t, bgDark.Value, "oklch(0.200 ")

	neutral := []string{
		RoleBgDark, RoleBg, RoleBgLight, RoleTextLight, RoleText, RoleTextDark,
		RoleHighlight, RoleBorderLight, RoleBorder, RoleBorderDark, RolePrimary,
	}
	for _, role := range neutral {
		assert.Equal(t, 0.0, parsedRole(t, p, role).H, role)
	}
	assert.Equal(t, 60.0, parsedRole(t, p, RoleSecondary).H)
}

func TestGenerateThemeAllMax(t *testing.T) {
	g := NewGenerator(DefaultTuning())
	c := g.Derive(Sliders{Warmth: 100, Saturation: 100, Contrast: 100, Accessibility: 100})
	assert.Equal(t, 0.25, c.TextMin)
	assert.Equal(t, 0.95, c.BgMax)

	p := mustGenerate(t, 100, 100, 100, 100)

	// Hue 360 wraps to 0.
	assert.Equal(t, 0.0, parsedRole(t, p, RolePrimary).H)

	// text.base is 0.20 before the floor, text-dark 0.05.
	assert.InDelta(t, 0.25, parsedRole(t, p, RoleText).L, 1e-9)
	assert.InDelta(t, 0.20, parsedRole(t, p, RoleTextDark).L, 1e-9)
	assert.InDelta(t, 0.97, parsedRole(t, p, RoleBgLight).L, 1e-9)

	for _, sw := range p.Swatches() {
		o := parsedRole(t, p, sw.Role)
		assert.LessOrEqual(t, o.C, MaxChroma, sw.Role)
	}
	assert.InDelta(t, 0.22, parsedRole(t, p, RoleWarning).C, 1e-9)
}

func TestGenerateThemeOutputBounds(t *testing.T) {
	steps := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	for _, w := range steps {
		for _, s := range steps {
			for _, c := range steps {
				for _, a := range steps {
					p, err := GenerateTheme(w, s, c, a)
					require.NoError(t, err)
					for _, sw := range p.Swatches() {
						o, err := ParseOKLCH(sw.Value)
						require.NoError(t, err)
						if o.L < 0 || o.L > 1 || o.C < 0 || o.C > MaxChroma || o.H < 0 || o.H >= 360 {
							t.Fatalf("%s out of bounds for (%v,%v,%v,%v): %s", sw.Role, w, s, c, a, sw.Value)
						}
					}
				}
			}
		}
	}
}

func TestGenerateThemeDeterministic(t *testing.T) {
	first := mustGenerate(t, 37, 81, 12, 64)
	for i := 0; i < 5; i++ {
		again := mustGenerate(t, 37, 81, 12, 64)
		assert.Equal(t, first.Map(), again.Map())
	}
}

func TestContrastMonotonicity(t *testing.T) {
	prevBg := math.Inf(1)
	prevDark := math.Inf(1)
	for contrast := 0.0; contrast <= 100; contrast += 5 {
		p := mustGenerate(t, 40, 50, contrast, 30)

		bg, _ := p.Swatch(RoleBg)
		assert.Less(t, bg.Raw.L, prevBg, "bg must darken as contrast rises (contrast=%v)", contrast)
		prevBg = bg.Raw.L

		// bg-dark follows 0.12 + 0.08*(1-contrast): it deepens toward 0.12
		// and never crosses the 0.10 floor.
		dark, _ := p.Swatch(RoleBgDark)
		assert.Less(t, dark.Raw.L, prevDark, "contrast=%v", contrast)
		assert.GreaterOrEqual(t, dark.Raw.L, 0.10)
		prevDark = dark.Raw.L
	}
}

func TestAccessibilityStep(t *testing.T) {
	at50 := mustGenerate(t, 50, 50, 100, 50)
	at51 := mustGenerate(t, 50, 50, 100, 51)

	// At contrast 100 text.base sits near 0.225: the relaxed floor (0.15)
	// leaves it alone, the strict floor (0.25) lifts it.
	text50 := parsedRole(t, at50, RoleText).L
	text51 := parsedRole(t, at51, RoleText).L
	assert.InDelta(t, 0.225, text50, 1e-9)
	assert.InDelta(t, 0.25, text51, 1e-9)
	assert.Greater(t, text51-text50, 0.02)

	g := NewGenerator(DefaultTuning())
	assert.Equal(t, 0.98, g.Derive(Sliders{Accessibility: 50}).BgMax)
	assert.Equal(t, 0.95, g.Derive(Sliders{Accessibility: 51}).BgMax)
}

func TestSecondaryHueOffset(t *testing.T) {
	for warmth := 0.0; warmth <= 100; warmth += 2.5 {
		p := mustGenerate(t, warmth, 50, 50, 50)
		primary, _ := p.Swatch(RolePrimary)
		secondary, _ := p.Swatch(RoleSecondary)
		assert.InDelta(t, math.Mod(primary.Raw.H+60, 360), secondary.Raw.H, 1e-9, "warmth=%v", warmth)
	}
}

func TestStatusHuesAreFixed(t *testing.T) {
	for _, warmth := range []float64{0, 33, 66, 100} {
		p := mustGenerate(t, warmth, 50, 50, 50)
		assert.Equal(t, 25.0, parsedRole(t, p, RoleDanger).H)
		assert.Equal(t, 85.0, parsedRole(t, p, RoleWarning).H)
		assert.Equal(t, 145.0, parsedRole(t, p, RoleSuccess).H)
		assert.Equal(t, 240.0, parsedRole(t, p, RoleInfo).H)
	}
}

func TestGenerateRejectsNonFinite(t *testing.T) {
	cases := []Sliders{
		{Warmth: math.NaN(), Saturation: 50, Contrast: 50, Accessibility: 50},
		{Warmth: 50, Saturation: math.Inf(1), Contrast: 50, Accessibility: 50},
		{Warmth: 50, Saturation: 50, Contrast: math.Inf(-1), Accessibility: 50},
		{Warmth: 50, Saturation: 50, Contrast: 50, Accessibility: math.NaN()},
	}
	g := NewGenerator(DefaultTuning())
	for _, s := range cases {
		p, err := g.Generate(s)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, p)
	}
}

func TestGenerateClampsOutOfRange(t *testing.T) {
	p := mustGenerate(t, -20, 150, 50, 50)
	assert.True(t, p.Clamped)
	assert.Equal(t, Sliders{Warmth: 0, Saturation: 100, Contrast: 50, Accessibility: 50}, p.Sliders)

	ref := mustGenerate(t, 0, 100, 50, 50)
	assert.False(t, ref.Clamped)
	assert.Equal(t, ref.Map(), p.Map())
}

func TestCustomTuning(t *testing.T) {
	tuning := DefaultTuning()
	tuning.HueScale = 0
	tuning.Info.Hue = 200

	p, err := NewGenerator(tuning).Generate(Sliders{Warmth: 80, Saturation: 50, Contrast: 50, Accessibility: 50})
	require.NoError(t, err)

	assert.Equal(t, 0.0, parsedRole(t, p, RolePrimary).H)
	assert.Equal(t, 200.0, parsedRole(t, p, RoleInfo).H)
}

func TestTuningValidate(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())

	bad := DefaultTuning()
	bad.Warning.Source = "loud"
	assert.Error(t, bad.Validate())

	bad = DefaultTuning()
	bad.Accessibility.Threshold = 1.5
	assert.Error(t, bad.Validate())

	bad = DefaultTuning()
	bad.HueScale = math.NaN()
	assert.Error(t, bad.Validate())
}

func TestTuningValidateNestedNonFinite(t *testing.T) {
	tests := []struct {
		key    string
		mutate func(*Tuning)
	}{
		{"text.base.contrast", func(tu *Tuning) { tu.Text.Base.Contrast = math.NaN() }},
		{"accent_chroma.range", func(tu *Tuning) { tu.AccentChroma.Range = math.Inf(1) }},
		{"chroma.highlight", func(tu *Tuning) { tu.Chroma.Highlight = math.NaN() }},
		{"info.scale", func(tu *Tuning) { tu.Info.Scale = math.NaN() }},
		{"danger.lightness.access", func(tu *Tuning) { tu.Danger.Lightness.Access = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			err := tuning.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestPaletteJSONKeepsOrder(t *testing.T) {
	p := mustGenerate(t, 10, 20, 30, 40)
	data, err := p.MarshalJSON()
	require.NoError(t, err)

	body := string(data)
	last := -1
	for _, role := range Roles() {
		idx := indexOfKey(body, role)
		require.GreaterOrEqual(t, idx, 0, role)
		assert.Greater(t, idx, last, "role %s out of order", role)
		last = idx
	}
}

func indexOfKey(body, key string) int {
	needle := strconv.Quote(key) + ":"
	for i := 0; i+len(needle) <= len(body); i++ {
		if body[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

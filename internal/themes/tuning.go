// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"reflect"
)

// Ramp is a linear response to the contrast and accessibility factors:
// Base + Contrast*contrastFactor + Access*accessibilityFactor.
type Ramp struct {
	Base     float64 `mapstructure:"base" yaml:"base" json:"base"`
	Contrast float64 `mapstructure:"contrast" yaml:"contrast" json:"contrast"`
	Access   float64 `mapstructure:"access" yaml:"access" json:"access"`
}

// Each product is rounded on its own (no fused multiply-add).
func (r Ramp) at(contrast, access float64) float64 {
	return r.Base + float64(r.Contrast*contrast) + float64(r.Access*access)
}

// ChromaRamp scales a chroma base by the saturation multiplier.
type ChromaRamp struct {
	Base  float64 `mapstructure:"base" yaml:"base" json:"base"`
	Range float64 `mapstructure:"range" yaml:"range" json:"range"`
}

func (r ChromaRamp) at(multiplier float64) float64 {
	return r.Base + float64(r.Range*multiplier)
}

// LightnessSet holds the dark/base/light ramps of one structural role.
type LightnessSet struct {
	Dark  Ramp `mapstructure:"dark" yaml:"dark" json:"dark"`
	Base  Ramp `mapstructure:"base" yaml:"base" json:"base"`
	Light Ramp `mapstructure:"light" yaml:"light" json:"light"`
}

// Bounds is one side of the accessibility step.
type Bounds struct {
	TextMin float64 `mapstructure:"text_min" yaml:"text_min" json:"text_min"`
	BgMax   float64 `mapstructure:"bg_max" yaml:"bg_max" json:"bg_max"`
}

// AccessibilityTuning selects Strict bounds when the accessibility factor is
// strictly greater than Threshold, Relaxed bounds otherwise.
type AccessibilityTuning struct {
	Threshold float64 `mapstructure:"threshold" yaml:"threshold" json:"threshold"`
	Strict    Bounds  `mapstructure:"strict" yaml:"strict" json:"strict"`
	Relaxed   Bounds  `mapstructure:"relaxed" yaml:"relaxed" json:"relaxed"`
}

// RoleChroma multiplies the neutral, UI or accent chroma for each role.
type RoleChroma struct {
	BgDark      float64 `mapstructure:"bg_dark" yaml:"bg_dark" json:"bg_dark"`
	Bg          float64 `mapstructure:"bg" yaml:"bg" json:"bg"`
	BgLight     float64 `mapstructure:"bg_light" yaml:"bg_light" json:"bg_light"`
	TextLight   float64 `mapstructure:"text_light" yaml:"text_light" json:"text_light"`
	Text        float64 `mapstructure:"text" yaml:"text" json:"text"`
	TextDark    float64 `mapstructure:"text_dark" yaml:"text_dark" json:"text_dark"`
	Highlight   float64 `mapstructure:"highlight" yaml:"highlight" json:"highlight"`
	BorderLight float64 `mapstructure:"border_light" yaml:"border_light" json:"border_light"`
	Border      float64 `mapstructure:"border" yaml:"border" json:"border"`
	BorderDark  float64 `mapstructure:"border_dark" yaml:"border_dark" json:"border_dark"`
	Primary     float64 `mapstructure:"primary" yaml:"primary" json:"primary"`
	Secondary   float64 `mapstructure:"secondary" yaml:"secondary" json:"secondary"`
}

// ChromaSource names which chroma base a status color draws from.
type ChromaSource string

const (
	ChromaNeutral ChromaSource = "neutral"
	ChromaUI      ChromaSource = "ui"
	ChromaAccent  ChromaSource = "accent"
)

// StatusTuning describes a fixed-hue status color.
type StatusTuning struct {
	Hue       float64      `mapstructure:"hue" yaml:"hue" json:"hue"`
	Lightness Ramp         `mapstructure:"lightness" yaml:"lightness" json:"lightness"`
	Source    ChromaSource `mapstructure:"source" yaml:"source" json:"source"`
	Scale     float64      `mapstructure:"scale" yaml:"scale" json:"scale"`
}

// Tuning is the full set of coefficients the generator works from.
// DefaultTuning returns the canonical values; a custom Tuning changes the
// numbers but never the role schema.
type Tuning struct {
	HueScale           float64 `mapstructure:"hue_scale" yaml:"hue_scale" json:"hue_scale"`
	SecondaryHueOffset float64 `mapstructure:"secondary_hue_offset" yaml:"secondary_hue_offset" json:"secondary_hue_offset"`

	NeutralChroma ChromaRamp `mapstructure:"neutral_chroma" yaml:"neutral_chroma" json:"neutral_chroma"`
	UIChroma      ChromaRamp `mapstructure:"ui_chroma" yaml:"ui_chroma" json:"ui_chroma"`
	AccentChroma  ChromaRamp `mapstructure:"accent_chroma" yaml:"accent_chroma" json:"accent_chroma"`

	// Background.Dark is evaluated against (1 - contrastFactor).
	Background LightnessSet `mapstructure:"background" yaml:"background" json:"background"`
	Text       LightnessSet `mapstructure:"text" yaml:"text" json:"text"`
	Border     LightnessSet `mapstructure:"border" yaml:"border" json:"border"`
	Primary    Ramp         `mapstructure:"primary" yaml:"primary" json:"primary"`
	Secondary  Ramp         `mapstructure:"secondary" yaml:"secondary" json:"secondary"`

	Accessibility AccessibilityTuning `mapstructure:"accessibility" yaml:"accessibility" json:"accessibility"`

	BgDarkFloor     float64 `mapstructure:"bg_dark_floor" yaml:"bg_dark_floor" json:"bg_dark_floor"`
	BgLightHeadroom float64 `mapstructure:"bg_light_headroom" yaml:"bg_light_headroom" json:"bg_light_headroom"`
	TextDarkSlack   float64 `mapstructure:"text_dark_slack" yaml:"text_dark_slack" json:"text_dark_slack"`
	HighlightOffset float64 `mapstructure:"highlight_offset" yaml:"highlight_offset" json:"highlight_offset"`

	Chroma RoleChroma `mapstructure:"chroma" yaml:"chroma" json:"chroma"`

	Danger  StatusTuning `mapstructure:"danger" yaml:"danger" json:"danger"`
	Warning StatusTuning `mapstructure:"warning" yaml:"warning" json:"warning"`
	Success StatusTuning `mapstructure:"success" yaml:"success" json:"success"`
	Info    StatusTuning `mapstructure:"info" yaml:"info" json:"info"`
}

// DefaultTuning returns the canonical coefficient set.
func DefaultTuning() Tuning {
	return Tuning{
		HueScale:           3.6,
		SecondaryHueOffset: 60,

		NeutralChroma: ChromaRamp{Base: 0.01, Range: 0.02},
		UIChroma:      ChromaRamp{Base: 0.08, Range: 0.12},
		AccentChroma:  ChromaRamp{Base: 0.05, Range: 0.15},

		Background: LightnessSet{
			Dark:  Ramp{Base: 0.12, Contrast: 0.08},
			Base:  Ramp{Base: 0.96, Contrast: -0.08},
			Light: Ramp{Base: 0.99, Contrast: -0.02},
		},
		Text: LightnessSet{
			Light: Ramp{Base: 0.45, Contrast: 0.15, Access: 0.10},
			Base:  Ramp{Base: 0.30, Contrast: -0.05, Access: -0.05},
			Dark:  Ramp{Base: 0.15, Contrast: -0.05, Access: -0.05},
		},
		Border: LightnessSet{
			Light: Ramp{Base: 0.93, Contrast: -0.05},
			Base:  Ramp{Base: 0.83, Contrast: -0.08},
			Dark:  Ramp{Base: 0.68, Contrast: -0.13},
		},
		Primary:   Ramp{Base: 0.50, Contrast: 0.10},
		Secondary: Ramp{Base: 0.55, Contrast: 0.10},

		Accessibility: AccessibilityTuning{
			Threshold: 0.5,
			Strict:    Bounds{TextMin: 0.25, BgMax: 0.95},
			Relaxed:   Bounds{TextMin: 0.15, BgMax: 0.98},
		},

		BgDarkFloor:     0.10,
		BgLightHeadroom: 0.02,
		TextDarkSlack:   0.05,
		HighlightOffset: 0.03,

		Chroma: RoleChroma{
			BgDark:      0.5,
			Bg:          0.3,
			BgLight:     0.2,
			TextLight:   1,
			Text:        1.2,
			TextDark:    1.5,
			Highlight:   2,
			BorderLight: 0.8,
			Border:      1.2,
			BorderDark:  1.5,
			Primary:     1,
			Secondary:   0.9,
		},

		Danger:  StatusTuning{Hue: 25, Lightness: Ramp{Base: 0.55, Access: -0.05}, Source: ChromaAccent, Scale: 1},
		Warning: StatusTuning{Hue: 85, Lightness: Ramp{Base: 0.70, Access: 0.05}, Source: ChromaAccent, Scale: 1.1},
		Success: StatusTuning{Hue: 145, Lightness: Ramp{Base: 0.58, Access: -0.03}, Source: ChromaAccent, Scale: 1},
		Info:    StatusTuning{Hue: 240, Lightness: Ramp{Base: 0.58}, Source: ChromaUI, Scale: 0.85},
	}
}

// Validate rejects tunings that cannot produce a sensible palette.
func (t Tuning) Validate() error {
	if name := firstNonFinite(reflect.ValueOf(t), ""); name != "" {
		return fmt.Errorf("tuning %s is not finite", name)
	}
	if t.Accessibility.Threshold < 0 || t.Accessibility.Threshold > 1 {
		return fmt.Errorf("tuning accessibility.threshold %g outside [0,1]", t.Accessibility.Threshold)
	}
	for name, status := range map[string]StatusTuning{
		"danger": t.Danger, "warning": t.Warning, "success": t.Success, "info": t.Info,
	} {
		switch status.Source {
		case ChromaNeutral, ChromaUI, ChromaAccent:
		default:
			return fmt.Errorf("tuning %s.source %q is not one of neutral, ui, accent", name, status.Source)
		}
	}
	return nil
}

// firstNonFinite walks every float field of v and returns the dotted
// config key of the first NaN or infinity, or "" when all are finite.
func firstNonFinite(v reflect.Value, prefix string) string {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return prefix
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			key := field.Tag.Get("mapstructure")
			if key == "" {
				key = field.Name
			}
			if prefix != "" {
				key = prefix + "." + key
			}
			if name := firstNonFinite(v.Field(i), key); name != "" {
				return name
			}
		}
	}
	return ""
}

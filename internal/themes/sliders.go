// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"math"
)

// Slider range.
const (
	SliderMin = 0.0
	SliderMax = 100.0
)

// ErrInvalidInput is returned when a slider value is NaN or infinite.
var ErrInvalidInput = errors.New("invalid input")

// Sliders are the four user-facing inputs, nominally in [0,100].
type Sliders struct {
	Warmth        float64 `json:"warmth" yaml:"warmth" mapstructure:"warmth"`
	Saturation    float64 `json:"saturation" yaml:"saturation" mapstructure:"saturation"`
	Contrast      float64 `json:"contrast" yaml:"contrast" mapstructure:"contrast"`
	Accessibility float64 `json:"accessibility" yaml:"accessibility" mapstructure:"accessibility"`
}

// DefaultSliders is the midpoint the builder page opens with.
func DefaultSliders() Sliders {
	return Sliders{Warmth: 50, Saturation: 50, Contrast: 50, Accessibility: 50}
}

// Validate reports ErrInvalidInput for non-finite values. Out-of-range finite
// values are not an error; see Clamp.
func (s Sliders) Validate() error {
	for _, f := range s.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidInput, f.name, f.value)
		}
	}
	return nil
}

// InRange reports whether every slider already lies in [0,100].
func (s Sliders) InRange() bool {
	for _, f := range s.fields() {
		if f.value < SliderMin || f.value > SliderMax {
			return false
		}
	}
	return true
}

// Clamp pins every slider into [0,100].
func (s Sliders) Clamp() Sliders {
	return Sliders{
		Warmth:        clampSlider(s.Warmth),
		Saturation:    clampSlider(s.Saturation),
		Contrast:      clampSlider(s.Contrast),
		Accessibility: clampSlider(s.Accessibility),
	}
}

type sliderField struct {
	name  string
	value float64
}

func (s Sliders) fields() []sliderField {
	return []sliderField{
		{"warmth", s.Warmth},
		{"saturation", s.Saturation},
		{"contrast", s.Contrast},
		{"accessibility", s.Accessibility},
	}
}

func clampSlider(v float64) float64 {
	return math.Max(SliderMin, math.Min(SliderMax, v))
}

package themes

// Preset is a named starting point for the sliders.
type Preset struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Sliders     Sliders `json:"sliders" yaml:"sliders"`
}

var presets = map[string]*Preset{
	"default": {
		Name:        "default",
		Description: "Balanced midpoint",
		Sliders:     Sliders{Warmth: 50, Saturation: 50, Contrast: 50, Accessibility: 50},
	},
	"slate": {
		Name:        "slate",
		Description: "Cool, nearly gray",
		Sliders:     Sliders{Warmth: 70, Saturation: 10, Contrast: 55, Accessibility: 60},
	},
	"indigo": {
		Name:        "indigo",
		Description: "Saturated blue-violet",
		Sliders:     Sliders{Warmth: 78, Saturation: 80, Contrast: 60, Accessibility: 50},
	},
	"rose": {
		Name:        "rose",
		Description: "Warm pink-red",
		Sliders:     Sliders{Warmth: 3, Saturation: 75, Contrast: 50, Accessibility: 50},
	},
	"emerald": {
		Name:        "emerald",
		Description: "Vivid green",
		Sliders:     Sliders{Warmth: 45, Saturation: 70, Contrast: 55, Accessibility: 50},
	},
	"navy": {
		Name:        "navy",
		Description: "Deep blue with strong contrast",
		Sliders:     Sliders{Warmth: 73, Saturation: 60, Contrast: 85, Accessibility: 70},
	},
	"purple": {
		Name:        "purple",
		Description: "Bright purple",
		Sliders:     Sliders{Warmth: 85, Saturation: 90, Contrast: 50, Accessibility: 40},
	},
	"teal": {
		Name:        "teal",
		Description: "Blue-green",
		Sliders:     Sliders{Warmth: 55, Saturation: 65, Contrast: 50, Accessibility: 50},
	},
	"amber": {
		Name:        "amber",
		Description: "Golden orange",
		Sliders:     Sliders{Warmth: 20, Saturation: 85, Contrast: 45, Accessibility: 50},
	},
	"neutral": {
		Name:        "neutral",
		Description: "Grayscale",
		Sliders:     Sliders{Warmth: 0, Saturation: 0, Contrast: 50, Accessibility: 50},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Maximum contrast and accessibility bias",
		Sliders:     Sliders{Warmth: 70, Saturation: 40, Contrast: 100, Accessibility: 100},
	},
}

var presetOrder = []string{
	"default", "slate", "indigo", "rose", "emerald", "navy",
	"purple", "teal", "amber", "neutral", "high-contrast",
}

// GetPreset returns a preset by name, or nil.
func GetPreset(name string) *Preset {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns all presets in display order.
func ListPresets() []*Preset {
	var out []*Preset
	for _, name := range presetOrder {
		if p := GetPreset(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}

package themes

import (
	"testing"
)

func TestPresetExists(t *testing.T) {
	preset := GetPreset("slate")
	if preset == nil {
		t.Fatal("slate preset not found")
	}
}

func TestUnknownPreset(t *testing.T) {
	if GetPreset("plaid") != nil {
		t.Fatal("expected nil for unknown preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	p := GetPreset("indigo")
	p.Sliders.Warmth = 0

	if GetPreset("indigo").Sliders.Warmth == 0 {
		t.Fatal("mutating a returned preset changed the registry")
	}
}

func TestListPresets(t *testing.T) {
	list := ListPresets()
	if len(list) != 11 {
		t.Errorf("expected 11 presets, got %d", len(list))
	}
	if list[0].Name != "default" {
		t.Errorf("expected default preset first, got %s", list[0].Name)
	}
}

func TestPresetNamesUnique(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range ListPresets() {
		if names[p.Name] {
			t.Errorf("duplicate preset name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestPresetsAreInRangeAndGenerate(t *testing.T) {
	for _, p := range ListPresets() {
		if !p.Sliders.InRange() {
			t.Errorf("preset %s has sliders outside [0,100]: %+v", p.Name, p.Sliders)
		}
		palette, err := NewGenerator(DefaultTuning()).Generate(p.Sliders)
		if err != nil {
			t.Fatalf("preset %s failed to generate: %v", p.Name, err)
		}
		if palette.Clamped {
			t.Errorf("preset %s should not need clamping", p.Name)
		}
	}
}

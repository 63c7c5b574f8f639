// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"encoding/json"
)

// Role names, in palette order.
const (
	RoleBgDark      = "bg-dark"
	RoleBg          = "bg"
	RoleBgLight     = "bg-light"
	RoleTextLight   = "text-light"
	RoleText        = "text"
	RoleTextDark    = "text-dark"
	RoleHighlight   = "highlight"
	RoleBorderLight = "border-light"
	RoleBorder      = "border"
	RoleBorderDark  = "border-dark"
	RolePrimary     = "primary"
	RoleSecondary   = "secondary"
	RoleDanger      = "danger"
	RoleWarning     = "warning"
	RoleSuccess     = "success"
	RoleInfo        = "info"
)

var roleOrder = []string{
	RoleBgDark, RoleBg, RoleBgLight,
	RoleTextLight, RoleText, RoleTextDark,
	RoleHighlight,
	RoleBorderLight, RoleBorder, RoleBorderDark,
	RolePrimary, RoleSecondary,
	RoleDanger, RoleWarning, RoleSuccess, RoleInfo,
}

// Roles returns the 16 role names in palette order.
func Roles() []string {
	return append([]string(nil), roleOrder...)
}

// RoleGroup is a labelled set of roles as laid out on the preview page.
type RoleGroup struct {
	Title string
	Roles []RoleLabel
}

// RoleLabel pairs a role with its short display label.
type RoleLabel struct {
	Role  string
	Label string
}

// RoleGroups returns the preview layout: backgrounds, text, borders, UI and
// status colors.
func RoleGroups() []RoleGroup {
	return []RoleGroup{
		{Title: "Backgrounds", Roles: []RoleLabel{{RoleBgDark, "Dark"}, {RoleBg, "Base"}, {RoleBgLight, "Light"}}},
		{Title: "Text Colors", Roles: []RoleLabel{{RoleTextDark, "Dark"}, {RoleText, "Base"}, {RoleTextLight, "Light"}}},
		{Title: "Borders", Roles: []RoleLabel{{RoleBorderDark, "Dark"}, {RoleBorder, "Base"}, {RoleBorderLight, "Light"}}},
		{Title: "UI Colors", Roles: []RoleLabel{{RoleHighlight, "Highlight"}, {RolePrimary, "Primary"}, {RoleSecondary, "Secondary"}}},
		{Title: "Status Colors", Roles: []RoleLabel{{RoleSuccess, "Success"}, {RoleWarning, "Warning"}, {RoleDanger, "Danger"}, {RoleInfo, "Info"}}},
	}
}

// Swatch is one palette entry. Raw holds the coordinates before the
// formatter's clamp; Value is the formatted oklch() string.
type Swatch struct {
	Role  string
	Raw   OKLCH
	Value string
}

// Palette is the ordered role-to-color mapping produced by a Generator.
// It is never mutated after Generate returns.
type Palette struct {
	// Sliders are the effective inputs, after clamping.
	Sliders Sliders
	// Clamped is true when at least one input was outside [0,100].
	Clamped bool

	swatches []Swatch
	index    map[string]int
}

func newPalette(s Sliders, clamped bool, swatches []Swatch) *Palette {
	p := &Palette{
		Sliders:  s,
		Clamped:  clamped,
		swatches: swatches,
		index:    make(map[string]int, len(swatches)),
	}
	for i, sw := range swatches {
		p.index[sw.Role] = i
	}
	return p
}

// Len is always 16 for a generated palette.
func (p *Palette) Len() int { return len(p.swatches) }

// Get returns the formatted color for a role.
func (p *Palette) Get(role string) (string, bool) {
	i, ok := p.index[role]
	if !ok {
		return "", false
	}
	return p.swatches[i].Value, true
}

// Swatch returns the full entry for a role.
func (p *Palette) Swatch(role string) (Swatch, bool) {
	i, ok := p.index[role]
	if !ok {
		return Swatch{}, false
	}
	return p.swatches[i], true
}

// Swatches returns a copy of the entries in palette order.
func (p *Palette) Swatches() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}

// Map returns the palette as an unordered map, for callers that key by role.
func (p *Palette) Map() map[string]string {
	m := make(map[string]string, len(p.swatches))
	for _, sw := range p.swatches {
		m[sw.Role] = sw.Value
	}
	return m
}

// HexMap returns the sRGB fallback of every role.
func (p *Palette) HexMap() map[string]string {
	m := make(map[string]string, len(p.swatches))
	for _, sw := range p.swatches {
		m[sw.Role] = sw.Raw.Hex()
	}
	return m
}

// MarshalJSON encodes the palette as a JSON object with keys in palette order.
func (p *Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sw := range p.swatches {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sw.Role)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sw.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

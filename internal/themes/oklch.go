// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Output bounds of the formatter.
const (
	MaxLightness = 1.0
	MaxChroma    = 0.4
)

// ErrMalformedColor is returned by ParseOKLCH for anything that is not an
// oklch(L C H) literal.
var ErrMalformedColor = errors.New("malformed oklch color")

// OKLCH is a color in the OKLCH perceptual space.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Clamped returns the color with lightness in [0,1], chroma in [0,0.4] and
// hue in [0,360). NaN components collapse to the lower bound, infinities to
// the nearest bound, and a non-finite hue to 0.
func (o OKLCH) Clamped() OKLCH {
	return OKLCH{
		L: clampUnit(o.L, MaxLightness),
		C: clampUnit(o.C, MaxChroma),
		H: normalizeHue(o.H),
	}
}

// String formats the color as a CSS oklch() literal.
func (o OKLCH) String() string {
	return FormatOKLCH(o.L, o.C, o.H)
}

// FormatOKLCH clamps the components and renders `oklch(L C H)` with three
// decimals for lightness and chroma and one for hue.
func FormatOKLCH(lightness, chroma, hue float64) string {
	c := OKLCH{L: lightness, C: chroma, H: hue}.Clamped()
	h := toFixed(c.H, 1)
	if h == "360.0" {
		// 359.95 and up round onto the wrap point.
		h = "0.0"
	}
	return fmt.Sprintf("oklch(%s %s %s)", toFixed(c.L, 3), toFixed(c.C, 3), h)
}

// toFixed renders x with the given number of decimals, rounding an exact
// tie away from zero like JavaScript's Number.toFixed. strconv rounds ties
// to even, so 0.0625 would come out as 0.062.
func toFixed(x float64, digits int) string {
	neg := x < 0
	if neg {
		x = -x
	}

	// x has 53 significant bits and 10^digits at most a dozen more, so the
	// scaled value and the added half are exact at this precision.
	n := new(big.Float).SetPrec(256).SetFloat64(x)
	n.Mul(n, new(big.Float).SetPrec(256).SetFloat64(math.Pow10(digits)))
	n.Add(n, big.NewFloat(0.5))
	i, _ := n.Int(nil)

	s := i.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// ParseOKLCH reads a literal produced by FormatOKLCH. An optional percent
// sign on lightness and a "deg" suffix on hue are accepted.
func ParseOKLCH(s string) (OKLCH, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "oklch(") || !strings.HasSuffix(s, ")") {
		return OKLCH{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	fields := strings.Fields(s[len("oklch(") : len(s)-1])
	if len(fields) != 3 {
		return OKLCH{}, fmt.Errorf("%w: want 3 components, got %d", ErrMalformedColor, len(fields))
	}

	var out OKLCH
	l := fields[0]
	scale := 1.0
	if strings.HasSuffix(l, "%") {
		l = strings.TrimSuffix(l, "%")
		scale = 0.01
	}
	v, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: lightness: %v", ErrMalformedColor, err)
	}
	out.L = v * scale

	if out.C, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return OKLCH{}, fmt.Errorf("%w: chroma: %v", ErrMalformedColor, err)
	}
	if out.H, err = strconv.ParseFloat(strings.TrimSuffix(fields[2], "deg"), 64); err != nil {
		return OKLCH{}, fmt.Errorf("%w: hue: %v", ErrMalformedColor, err)
	}
	return out, nil
}

// Color converts to sRGB through OKLab. Out-of-gamut results are clamped
// into the sRGB cube.
func (o OKLCH) Color() colorful.Color {
	c := o.Clamped()
	rad := c.H * math.Pi / 180
	a := c.C * math.Cos(rad)
	b := c.C * math.Sin(rad)

	l := cube(c.L + 0.3963377774*a + 0.2158037573*b)
	m := cube(c.L - 0.1055613458*a - 0.0638541728*b)
	s := cube(c.L - 0.0894841775*a - 1.2914855480*b)

	return colorful.LinearRgb(
		+4.0767416621*l-3.3077115913*m+0.2309699292*s,
		-1.2684380046*l+2.6097574011*m-0.3413193965*s,
		-0.0041960863*l-0.7034186147*m+1.7076147010*s,
	).Clamped()
}

// Hex returns the nearest sRGB color as #rrggbb.
func (o OKLCH) Hex() string {
	return o.Color().Hex()
}

// RelativeLuminance is the WCAG 2.x relative luminance of the sRGB fallback.
func (o OKLCH) RelativeLuminance() float64 {
	r, g, b := o.Color().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio between two colors, in [1,21].
func ContrastRatio(a, b OKLCH) float64 {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func cube(x float64) float64 { return x * x * x }

func clampUnit(v, max float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= 0:
		return 0
	case v > max:
		return max
	}
	return v
}

// normalizeHue maps any finite hue into [0,360) as ((h mod 360)+360) mod 360.
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return math.Mod(math.Mod(h, 360)+360, 360)
}

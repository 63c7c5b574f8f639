package themes

// WCAG 2.x contrast thresholds.
const (
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
)

// ContrastCheck is the result for one foreground/background role pair.
type ContrastCheck struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AALarge    bool    `json:"aa_large"`
}

// auditPairs are the combinations the base styles draw: body text, card
// headings and muted copy on the card, marked text, button labels and the
// two notices.
var auditPairs = [][2]string{
	{RoleText, RoleBg},
	{RoleTextDark, RoleBgLight},
	{RoleTextLight, RoleBgLight},
	{RoleTextDark, RoleHighlight},
	{RoleBgLight, RolePrimary},
	{RoleBgLight, RoleSecondary},
	{RoleBgLight, RoleSuccess},
	{RoleBgLight, RoleDanger},
	{RoleBgLight, RoleInfo},
	{RoleTextDark, RoleWarning},
}

// Audit computes WCAG contrast for the role pairs used by the preview. It
// only reports; the palette is left untouched.
func Audit(p *Palette) []ContrastCheck {
	checks := make([]ContrastCheck, 0, len(auditPairs))
	for _, pair := range auditPairs {
		fg, ok := p.Swatch(pair[0])
		if !ok {
			continue
		}
		bg, ok := p.Swatch(pair[1])
		if !ok {
			continue
		}
		ratio := ContrastRatio(fg.Raw, bg.Raw)
		checks = append(checks, ContrastCheck{
			Foreground: pair[0],
			Background: pair[1],
			Ratio:      ratio,
			AA:         ratio >= ContrastAA,
			AALarge:    ratio >= ContrastAALarge,
		})
	}
	return checks
}

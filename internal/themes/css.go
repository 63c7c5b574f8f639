// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// GenerateVariables renders only the :root custom properties, one per role,
// in palette order.
func GenerateVariables(p *Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, sw := range p.swatches {
		fmt.Fprintf(&b, "  --%s: %s;\n", sw.Role, sw.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// GenerateCSS renders the custom properties, an sRGB fallback for browsers
// without oklch() support, and base element styles that consume them.
func GenerateCSS(p *Palette) string {
	var b strings.Builder
	b.WriteString(GenerateVariables(p))

	b.WriteString("\n@supports not (color: oklch(0 0 0)) {\n  :root {\n")
	for _, sw := range p.swatches {
		fmt.Fprintf(&b, "    --%s: %s;\n", sw.Role, sw.Raw.Hex())
	}
	b.WriteString("  }\n}\n")

	b.WriteString(baseStyles)
	return b.String()
}

const baseStyles = `
/* Base element styles */
body {
  background-color: var(--bg);
  color: var(--text);
  transition: background-color 0.2s, color 0.2s;
}

h1, h2, h3, h4, h5, h6 {
  color: var(--text-dark);
}

a {
  color: var(--primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

.muted {
  color: var(--text-light);
}

mark, .highlight {
  background-color: var(--highlight);
  color: var(--text-dark);
  padding: 0 4px;
  border-radius: 4px;
}

/* Buttons */
button, .btn {
  background-color: var(--primary);
  color: var(--bg-light);
  border: none;
  padding: 8px 16px;
  border-radius: 8px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.85;
}

.btn-secondary { background-color: var(--secondary); }
.btn-success { background-color: var(--success); }
.btn-danger { background-color: var(--danger); }

/* Cards */
.card, .surface {
  background-color: var(--bg-light);
  border: 2px solid var(--border);
  border-radius: 16px;
  padding: 16px;
}

.card-inner {
  background-color: var(--bg);
  border: 2px solid var(--border-light);
  border-radius: 12px;
  padding: 16px;
}

/* Inputs */
input[type="text"], textarea, select {
  border: 2px solid var(--border);
  background-color: var(--bg);
  color: var(--text);
  padding: 8px;
  border-radius: 8px;
}

input[type="text"]:focus, textarea:focus, select:focus {
  outline: none;
  border-color: var(--primary);
}

/* Alerts */
.alert-info { background-color: var(--info); color: var(--bg-light); }
.alert-warning { background-color: var(--warning); color: var(--text-dark); }

hr, .divider {
  border: none;
  border-top: 1px solid var(--border-dark);
}
`

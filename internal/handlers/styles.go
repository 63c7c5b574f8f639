// SPDX-License-Identifier: MIT
package handlers

const (
	// Layout
	LayoutMaxWidth  = "1200px"
	LayoutPanelSize = "320px"
	SwatchHeight    = "72px"
)

// builderLayoutCSS returns the page chrome for the builder. Colors come only
// from the generated palette variables so the page restyles itself.
func builderLayoutCSS() string {
	return `
* { box-sizing: border-box; }

body {
	font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	margin: 0;
	line-height: 1.5;
}

.builder-header {
	background-color: var(--bg-dark);
	border-bottom: 2px solid var(--border-dark);
	padding: 16px 24px;
}

.builder-header h1 { color: var(--bg-light); font-size: 22px; margin: 0; }
.builder-header p { color: var(--border-light); margin: 0; font-size: 14px; }

.builder {
	max-width: ` + LayoutMaxWidth + `;
	margin: 0 auto;
	padding: 24px;
	display: grid;
	grid-template-columns: ` + LayoutPanelSize + ` 1fr;
	gap: 24px;
}

@media (max-width: 800px) {
	.builder { grid-template-columns: 1fr; }
}

.controls label { display: block; font-weight: 600; margin-top: 12px; }
.controls input[type="range"] { width: 100%; accent-color: var(--primary); }
.controls .ends { display: flex; justify-content: space-between; font-size: 12px; }
.controls output { float: right; font-variant-numeric: tabular-nums; }
.controls .actions { margin-top: 16px; display: flex; gap: 8px; flex-wrap: wrap; }

.notice { padding: 8px 12px; border-radius: 8px; margin-bottom: 12px; }

.swatch-group { margin-bottom: 16px; }
.swatch-group h3 { font-size: 14px; margin: 0 0 8px; }
.swatch-row { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 8px; }

.swatch {
	border: 2px solid var(--border);
	border-radius: 12px;
	overflow: hidden;
	background-color: var(--bg-light);
}

.swatch .chip { height: ` + SwatchHeight + `; }
.swatch .meta { padding: 6px 8px; font-size: 12px; }
.swatch code { display: block; font-size: 11px; word-break: break-all; }

.preview { display: grid; gap: 16px; }
.preview .row { display: flex; gap: 8px; flex-wrap: wrap; align-items: center; }

table.contrast { width: 100%; border-collapse: collapse; font-size: 13px; }
table.contrast th, table.contrast td { text-align: left; padding: 4px 8px; border-bottom: 1px solid var(--border-light); }
table.contrast .pass { color: var(--success); font-weight: 600; }
table.contrast .fail { color: var(--danger); font-weight: 600; }

pre.css-out {
	background-color: var(--bg-dark);
	color: var(--bg-light);
	padding: 12px;
	border-radius: 8px;
	overflow-x: auto;
	font-size: 12px;
}
`
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/viz"
)

// Palette colours a scene export.
type Palette struct {
	BackgroundTop, BackgroundBottom string
	Ground, Hatch                   string
	Box, BoxEdge, BoxInner          string
	Force, Displacement, Arc        string
	Particle, Label                 string
}

var DefaultPalette = Palette{
	BackgroundTop:    "#0f172a",
	BackgroundBottom: "#1e293b",
	Ground:           "#475569",
	Hatch:            "#334155",
	Box:              "#3b82f6",
	BoxEdge:          "#60a5fa",
	BoxInner:         "#1e40af",
	Force:            "#ef4444",
	Displacement:     "#10b981",
	Arc:              "#fbbf24",
	Particle:         "251,191,36",
	Label:            "#f8fafc",
}

// SceneToSVG draws a scene as vector graphics.
func SceneToSVG(sc scene.Scene, p Palette) string {
	var sb strings.Builder
	s := sc.Scale

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<defs><linearGradient id="bg" x1="0" y1="0" x2="0" y2="1"><stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient></defs>
<rect width="100%%" height="100%%" fill="url(#bg)"/>
`, sc.Width, sc.Height, sc.Width, sc.Height, p.BackgroundTop, p.BackgroundBottom))

	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`, sc.GroundY, sc.Width, sc.GroundY, p.Ground, 2*s))
	for _, h := range sc.Hatches {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`, h.A.X, h.A.Y, h.B.X, h.B.Y, p.Hatch, s))
	}

	sh := sc.Shadow
	sb.WriteString(fmt.Sprintf(`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="rgba(0,0,0,0.3)"/>
`, sh.C.X, sh.C.Y, sh.RX, sh.RY))

	b, in := sc.Box, sc.Inner
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, b.X, b.Y, b.W, b.H, p.Box, p.BoxEdge, 3*s, in.X, in.Y, in.W, in.H, p.BoxInner))

	f := sc.Force
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, f.A.X, f.A.Y, f.B.X, f.B.Y, p.Force, 4*s,
		sc.Arrow[0].X, sc.Arrow[0].Y, sc.Arrow[1].X, sc.Arrow[1].Y, sc.Arrow[2].X, sc.Arrow[2].Y, p.Force))
	writeLabel(&sb, sc.ForceLabel, p.Label, 16*s)

	if d := sc.Displacement; d != nil {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="%.1f %.1f"/>
`, d.A.X, d.A.Y, d.B.X, d.B.Y, p.Displacement, 3*s, 10*s, 5*s))
		writeLabel(&sb, *sc.DistanceLabel, p.Label, 16*s)
	}

	if a := sc.Arc; a != nil {
		sb.WriteString(`<polyline fill="none" stroke="` + p.Arc + `" stroke-width="` + fmt.Sprintf("%.1f", 2*s) + `" points="`)
		for i, pt := range a.Points(32) {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
		}
		sb.WriteString("\"/>\n")
		writeLabel(&sb, *sc.AngleLabel, p.Arc, 14*s)
	}

	for _, pt := range sc.Particles {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="rgba(%s,%.2f)"/>
`, pt.C.X, pt.C.Y, pt.R, p.Particle, pt.Alpha))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeLabel(sb *strings.Builder, l scene.Label, color string, size float64) {
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="Arial" font-weight="bold" font-size="%.1f">%s</text>
`, l.At.X, l.At.Y, color, size, escape(l.Text)))
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

// CanvasToSVG draws a braille canvas, one circle per lit dot and one text
// element per run of label cells. Dots and text take their fill from fills
// by ink; inks missing from fills fall back to the label colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fills map[viz.Ink]string) string {
	if canvas == nil {
		return ""
	}

	cellW, cellH := 2*scale, 4*scale
	width := float64(canvas.Width) * cellW
	height := float64(canvas.Height) * cellH
	fill := func(ink viz.Ink) string {
		if f, ok := fills[ink]; ok {
			return f
		}
		return DefaultPalette.Label
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, DefaultPalette.BackgroundTop))

	dots := [4][2]rune{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	r := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			if canvas.IsText(col, row) {
				continue
			}
			pattern := canvas.Grid[row][col] - 0x2800
			if pattern <= 0 || pattern > 0xff {
				continue
			}
			x0, y0 := float64(col)*cellW, float64(row)*cellH
			color := fill(canvas.Inks[row][col])
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dots[dy][dx] == 0 {
						continue
					}
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x0+float64(dx)*scale+scale/2, y0+float64(dy)*scale+scale/2, r, color))
				}
			}
		}

		for col := 0; col < canvas.Width; {
			if !canvas.IsText(col, row) {
				col++
				continue
			}
			start, ink := col, canvas.Inks[row][col]
			for col < canvas.Width && canvas.IsText(col, row) && canvas.Inks[row][col] == ink {
				col++
			}
			text := string(canvas.Grid[row][start:col])
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.1f" textLength="%.1f">%s</text>
`, float64(start)*cellW, float64(row+1)*cellH-scale, fill(ink), cellH, float64(col-start)*cellW, escape(text)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/teardown/internal/viz"
)

const background = "#0a0a0a"

// Braille dot-to-bit mapping, row major.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG converts a rendered canvas to SVG. Each lit braille dot becomes
// a circle colored by its cell's ink; label cells become text.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r, ink := canvas.At(col, row)
			if r <= 0x2800 || r > 0x28ff {
				continue
			}
			pattern := r - 0x2800
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			color := string(theme.Color(ink))

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, color)
				}
			}
		}
	}

	for _, l := range labels(canvas) {
		fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
			float64(l.col)*scale*2, float64(l.row+1)*scale*4-scale, scale*3, theme.Color(viz.InkLabel), html.EscapeString(l.text))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

type label struct {
	col, row int
	text     string
}

// labels collects runs of label-ink cells, one entry per run.
func labels(canvas *viz.Canvas) []label {
	var out []label
	for row := 0; row < canvas.Height; row++ {
		var cur *label
		for col := 0; col < canvas.Width; col++ {
			r, ink := canvas.At(col, row)
			if ink != viz.InkLabel {
				cur = nil
				continue
			}
			if cur == nil {
				out = append(out, label{col: col, row: row})
				cur = &out[len(out)-1]
			}
			cur.text += string(r)
		}
	}
	return out
}

// SeriesToSVG plots one or more series sharing a frame axis as polylines.
// colors is indexed by series and wraps if shorter.
func SeriesToSVG(series [][]float64, colors []string, width, height int) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, s := range series {
		n = max(n, len(s))
		for _, v := range s {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if n < 2 {
		return ""
	}

	rangeY := hi - lo
	if rangeY == 0 {
		rangeY = 1
	}
	lo -= rangeY * 0.1
	hi += rangeY * 0.1
	rangeY = hi - lo

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	for i, s := range series {
		if len(s) < 2 {
			continue
		}
		stroke := "#00ff00"
		if len(colors) > 0 {
			stroke = colors[i%len(colors)]
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
		for j, v := range s {
			x := float64(j) / float64(n-1) * float64(width)
			y := float64(height) - (v-lo)/rangeY*float64(height)
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

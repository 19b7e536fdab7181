package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/streamplot/internal/plot"
)

const svgMargin = 40.0

// FigureToSVG stacks the axes of a figure vertically, one panel each.
func FigureToSVG(fig *plot.Figure, opts Options) string {
	return svgDocument(fig.Axes(), opts)
}

// AxesToSVG renders a single axes as a standalone document.
func AxesToSVG(ax *plot.Axes2D, opts Options) string {
	return svgDocument([]*plot.Axes2D{ax}, opts)
}

func svgDocument(axes []*plot.Axes2D, opts Options) string {
	width, height := opts.size()
	opts.Theme = opts.theme()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(axes) > 0 {
		panel := float64(height) / float64(len(axes))
		for i, ax := range axes {
			writeAxes(&sb, ax, opts, 0, float64(i)*panel, float64(width), panel)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeAxes(sb *strings.Builder, ax *plot.Axes2D, opts Options, x0, y0, w, h float64) {
	xmin, xmax := ax.XLim()
	ylo, yhi := yRange(ax)
	if xmax == xmin {
		xmax = xmin + 1
	}
	if yhi == ylo {
		yhi = ylo + 1
	}

	left, top := x0+svgMargin, y0+svgMargin/2
	pw, ph := w-2*svgMargin, h-svgMargin
	text := string(opts.Theme.Text)

	sb.WriteString(fmt.Sprintf(`<g>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444444"/>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="10" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="10" text-anchor="end">%.4g</text>
`, left, top, pw, ph,
		left, top-4, text, html.EscapeString(ax.Title),
		left-4, top+10, text, yhi,
		left-4, top+ph, text, ylo))

	for i, l := range ax.Lines() {
		color := opts.Theme.SeriesColor(l.Style().Color, i)
		stroke := l.Style().Width
		if stroke <= 0 {
			stroke = 1.5
		}
		for _, seg := range segments(ax, l) {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, color, stroke))
			for j, p := range seg {
				x := left + (p.X-xmin)/(xmax-xmin)*pw
				y := top + ph - (p.Y-ylo)/(yhi-ylo)*ph
				if j == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
				}
			}
			sb.WriteString("\"/>\n")
		}
	}

	sb.WriteString("</g>\n")
}

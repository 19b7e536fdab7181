package viz

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines the colour scheme for the dashboard
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	// Series is the line palette used when a style sets no colour.
	Series []string
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Error:   lipgloss.Color("#ff0000"),
		Series:  []string{"#00ffff", "#ff00ff", "#ffff00", "#00ff00", "#ff8800"},
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Error:   lipgloss.Color("#ff0000"),
		Series:  []string{"#00ff00", "#88ff88", "#00cc00", "#ccffcc"},
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#ff0000"),
		Series:  []string{"#ffffff", "#0088ff", "#aaaaaa", "#ffaa00"},
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Error:   lipgloss.Color("#ff4444"),
		Series:  []string{"#00a8cc", "#ffd700", "#00ff88", "#e0f0ff"},
	}

	// matplotlib-like palette
	ThemeStream = Theme{
		Name:    "stream",
		Primary: lipgloss.Color("#b0bdbb"),
		Accent:  lipgloss.Color("#eba92b"),
		Text:    lipgloss.Color("#efefef"),
		Muted:   lipgloss.Color("#404040"),
		Error:   lipgloss.Color("#db4743"),
		Series:  []string{"#74af60", "#49b6d2", "#db4743", "#eba92b"},
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeStream,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeCyberpunk, false
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SeriesColor picks the hex colour for the i-th line.
func (t Theme) SeriesColor(style string, i int) string {
	if style != "" {
		return style
	}
	series := t.Series
	if len(series) == 0 {
		series = ThemeCyberpunk.Series
	}
	return series[i%len(series)]
}

// AnsiColor maps a "#rrggbb" or named colour onto the xterm-256 palette
// asciigraph draws with.
func AnsiColor(c string) asciigraph.AnsiColor {
	if named, ok := asciigraph.ColorNames[strings.ToLower(c)]; ok {
		return named
	}
	r, g, b, ok := parseHex(c)
	if !ok {
		return asciigraph.Default
	}
	cube := func(v int) int { return (v*5 + 127) / 255 }
	return asciigraph.AnsiColor(16 + 36*cube(r) + 6*cube(g) + cube(b))
}

// RGBA converts a "#rrggbb" colour for image backends; anything else is gray.
func RGBA(c string) color.RGBA {
	r, g, b, ok := parseHex(c)
	if !ok {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

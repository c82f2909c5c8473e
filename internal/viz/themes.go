package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the live view.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Ink    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Good   lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemePaper = Theme{
		Name:   "paper",
		Title:  lipgloss.Color("#f5f0dc"),
		Ink:    lipgloss.Color("#e8e4d0"),
		Accent: lipgloss.Color("#d94f3d"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("244"),
		Border: lipgloss.Color("240"),
		Good:   lipgloss.Color("#7fbf7f"),
		Warn:   lipgloss.Color("#e0b050"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Title:  lipgloss.Color("#88ff88"),
		Ink:    lipgloss.Color("#33ff66"),
		Accent: lipgloss.Color("#ccffcc"),
		Text:   lipgloss.Color("#66dd66"),
		Muted:  lipgloss.Color("#227733"),
		Border: lipgloss.Color("#115522"),
		Good:   lipgloss.Color("#88ff88"),
		Warn:   lipgloss.Color("#ffff66"),
	}

	ThemeNight = Theme{
		Name:   "night",
		Title:  lipgloss.Color("#00ccff"),
		Ink:    lipgloss.Color("#9ad0ff"),
		Accent: lipgloss.Color("#ff66cc"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4477aa"),
		Border: lipgloss.Color("#334466"),
		Good:   lipgloss.Color("#00ff88"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemePaper, ThemePhosphor, ThemeNight}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

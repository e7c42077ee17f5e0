package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name         string
	Primary      lipgloss.Color
	Accent       lipgloss.Color
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Ground       lipgloss.Color
	Box          lipgloss.Color
	Force        lipgloss.Color
	Displacement lipgloss.Color
	Arc          lipgloss.Color
	Particle     lipgloss.Color
	Positive     lipgloss.Color
	Negative     lipgloss.Color
}

// Available themes
var (
	ThemeSlate = Theme{
		Name:         "slate",
		Primary:      lipgloss.Color("#60a5fa"),
		Accent:       lipgloss.Color("#fbbf24"),
		Text:         lipgloss.Color("#f1f5f9"),
		Muted:        lipgloss.Color("#64748b"),
		Ground:       lipgloss.Color("#475569"),
		Box:          lipgloss.Color("#3b82f6"),
		Force:        lipgloss.Color("#ef4444"),
		Displacement: lipgloss.Color("#10b981"),
		Arc:          lipgloss.Color("#fbbf24"),
		Particle:     lipgloss.Color("#fbbf24"),
		Positive:     lipgloss.Color("#10b981"),
		Negative:     lipgloss.Color("#ef4444"),
	}

	ThemeRetroGreen = Theme{
		Name:         "retro",
		Primary:      lipgloss.Color("#00ff00"), // Green phosphor
		Accent:       lipgloss.Color("#88ff88"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Ground:       lipgloss.Color("#007700"),
		Box:          lipgloss.Color("#00cc00"),
		Force:        lipgloss.Color("#ccff00"),
		Displacement: lipgloss.Color("#88ff88"),
		Arc:          lipgloss.Color("#ffff00"),
		Particle:     lipgloss.Color("#ffff88"),
		Positive:     lipgloss.Color("#88ff88"),
		Negative:     lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:         "cyberpunk",
		Primary:      lipgloss.Color("#ff00ff"), // Magenta
		Accent:       lipgloss.Color("#ffff00"), // Yellow
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666666"),
		Ground:       lipgloss.Color("#444466"),
		Box:          lipgloss.Color("#00ffff"),
		Force:        lipgloss.Color("#ff0080"),
		Displacement: lipgloss.Color("#00ff88"),
		Arc:          lipgloss.Color("#ffff00"),
		Particle:     lipgloss.Color("#ff88ff"),
		Positive:     lipgloss.Color("#00ff00"),
		Negative:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:         "minimal",
		Primary:      lipgloss.Color("#ffffff"),
		Accent:       lipgloss.Color("#0088ff"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#888888"),
		Ground:       lipgloss.Color("#555555"),
		Box:          lipgloss.Color("#cccccc"),
		Force:        lipgloss.Color("#ffffff"),
		Displacement: lipgloss.Color("#aaaaaa"),
		Arc:          lipgloss.Color("#0088ff"),
		Particle:     lipgloss.Color("#888888"),
		Positive:     lipgloss.Color("#00ff00"),
		Negative:     lipgloss.Color("#ff0000"),
	}

	// Default theme
	CurrentTheme = ThemeSlate

	// All available themes
	Themes = []Theme{
		ThemeSlate,
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme cycles to the theme after the current one.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = ThemeSlate
	return CurrentTheme
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// InkColors maps canvas inks to the theme's hex colours.
func (t Theme) InkColors() map[Ink]string {
	return map[Ink]string{
		InkGround:       string(t.Ground),
		InkBox:          string(t.Box),
		InkForce:        string(t.Force),
		InkDisplacement: string(t.Displacement),
		InkArc:          string(t.Arc),
		InkParticle:     string(t.Particle),
		InkLabel:        string(t.Text),
	}
}

// InkStyles maps canvas inks to the theme's colours.
func (t Theme) InkStyles() map[Ink]lipgloss.Style {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return map[Ink]lipgloss.Style{
		InkGround:       fg(t.Ground),
		InkBox:          fg(t.Box),
		InkForce:        fg(t.Force).Bold(true),
		InkDisplacement: fg(t.Displacement),
		InkArc:          fg(t.Arc),
		InkParticle:     fg(t.Particle),
		InkLabel:        fg(t.Text).Bold(true),
	}
}

package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/step"
)

// Theme defines the color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color

	// element roles
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Sorted  lipgloss.Color
	Merge   lipgloss.Color
	Split   lipgloss.Color
	Mid     lipgloss.Color
	Found   lipgloss.Color
	Outside lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:    "default",
		Primary: lipgloss.Color("#60a5fa"),
		Accent:  lipgloss.Color("#facc15"),
		Text:    lipgloss.Color("#f3f4f6"),
		Muted:   lipgloss.Color("#6b7280"),
		Error:   lipgloss.Color("#ef4444"),
		Bar:     lipgloss.Color("#3b82f6"), // blue
		Compare: lipgloss.Color("#eab308"), // yellow
		Swap:    lipgloss.Color("#ef4444"), // red
		Sorted:  lipgloss.Color("#22c55e"), // green
		Merge:   lipgloss.Color("#a855f7"), // purple
		Split:   lipgloss.Color("#f97316"), // orange
		Mid:     lipgloss.Color("#eab308"),
		Found:   lipgloss.Color("#22c55e"),
		Outside: lipgloss.Color("#374151"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"), // Magenta
		Accent:  lipgloss.Color("#ffff00"), // Yellow
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#00ffff"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0055"),
		Sorted:  lipgloss.Color("#00ff00"),
		Merge:   lipgloss.Color("#ff00ff"),
		Split:   lipgloss.Color("#ff8800"),
		Mid:     lipgloss.Color("#ffff00"),
		Found:   lipgloss.Color("#00ff00"),
		Outside: lipgloss.Color("#333333"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#00aa00"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff5500"),
		Sorted:  lipgloss.Color("#88ff88"),
		Merge:   lipgloss.Color("#00ffaa"),
		Split:   lipgloss.Color("#aaff00"),
		Mid:     lipgloss.Color("#ffff00"),
		Found:   lipgloss.Color("#88ff88"),
		Outside: lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#cccccc"),
		Compare: lipgloss.Color("#0088ff"),
		Swap:    lipgloss.Color("#ff0000"),
		Sorted:  lipgloss.Color("#00ff00"),
		Merge:   lipgloss.Color("#aaaaff"),
		Split:   lipgloss.Color("#ffaa00"),
		Mid:     lipgloss.Color("#0088ff"),
		Found:   lipgloss.Color("#00ff00"),
		Outside: lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"), // Ocean blue
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Error:   lipgloss.Color("#ff4444"),
		Bar:     lipgloss.Color("#00a8cc"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Merge:   lipgloss.Color("#9988ff"),
		Split:   lipgloss.Color("#ffcc00"),
		Mid:     lipgloss.Color("#ffd700"),
		Found:   lipgloss.Color("#00ff88"),
		Outside: lipgloss.Color("#123344"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"), // Coral
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Error:   lipgloss.Color("#ff4757"),
		Bar:     lipgloss.Color("#ff9ff3"),
		Compare: lipgloss.Color("#feca57"),
		Swap:    lipgloss.Color("#ff4757"),
		Sorted:  lipgloss.Color("#5fd068"),
		Merge:   lipgloss.Color("#c56cf0"),
		Split:   lipgloss.Color("#ffc048"),
		Mid:     lipgloss.Color("#feca57"),
		Found:   lipgloss.Color("#5fd068"),
		Outside: lipgloss.Color("#4a3350"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next returns the theme after t in Themes, wrapping around.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

// MarkColor is the bar color for an element role.
func (t Theme) MarkColor(m step.Mark) lipgloss.Color {
	switch m {
	case step.MarkCompare:
		return t.Compare
	case step.MarkSwap:
		return t.Swap
	case step.MarkSorted:
		return t.Sorted
	case step.MarkMerge:
		return t.Merge
	case step.MarkSplit:
		return t.Split
	case step.MarkMid:
		return t.Mid
	case step.MarkFound:
		return t.Found
	case step.MarkOutside:
		return t.Outside
	}
	return t.Bar
}

package ui

import "github.com/charmbracelet/lipgloss"

// Theme is one of the two display modes.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#1f2937"),
		Accent:     lipgloss.Color("#2563eb"),
		Muted:      lipgloss.Color("#6b7280"),
		Success:    lipgloss.Color("#16a34a"),
		Danger:     lipgloss.Color("#dc2626"),
	}
}

func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#27272a"),
		Foreground: lipgloss.Color("#f4f4f5"),
		Accent:     lipgloss.Color("#60a5fa"),
		Muted:      lipgloss.Color("#9ca3af"),
		Success:    lipgloss.Color("#4ade80"),
		Danger:     lipgloss.Color("#f87171"),
		IsDark:     true,
	}
}

type Styles struct {
	Theme Theme

	App          lipgloss.Style
	Title        lipgloss.Style
	FilterActive lipgloss.Style
	Filter       lipgloss.Style
	Task         lipgloss.Style
	TaskDone     lipgloss.Style
	Cursor       lipgloss.Style
	Action       lipgloss.Style
	Notice       lipgloss.Style
	Error        lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:        t,
		App:          lipgloss.NewStyle().Background(t.Background).Foreground(t.Foreground).Padding(1, 2),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		FilterActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(t.Accent),
		Filter:       lipgloss.NewStyle().Foreground(t.Muted),
		Task:         lipgloss.NewStyle().Foreground(t.Foreground),
		TaskDone:     lipgloss.NewStyle().Strikethrough(true).Faint(true).Foreground(t.Muted),
		Cursor:       lipgloss.NewStyle().Foreground(t.Accent),
		Action:       lipgloss.NewStyle().Foreground(t.Muted),
		Notice:       lipgloss.NewStyle().Foreground(t.Success),
		Error:        lipgloss.NewStyle().Foreground(t.Danger),
	}
}

func stylesFor(dark bool) Styles {
	if dark {
		return NewStyles(DarkTheme())
	}
	return NewStyles(LightTheme())
}

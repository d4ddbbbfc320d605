package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorGreenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorBlueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	ColorCyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	ColorMagentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Italic(true)

	// Status-specific styles
	ModifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	DeletedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	AddedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	UntrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	SeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5FFF"))

	HashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// enabled switches styling on and off for the whole process. Output that is
// piped or compared in tests must stay plain.
var enabled = true

// SetColor turns styled output on or off.
func SetColor(on bool) { enabled = on }

// ColorEnabled reports whether output is styled.
func ColorEnabled() bool { return enabled }

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}

// Color wrapper functions
func Green(s string) string {
	return render(ColorGreenStyle, s)
}

func Red(s string) string {
	return render(ColorRedStyle, s)
}

func Yellow(s string) string {
	return render(ColorYellowStyle, s)
}

func Blue(s string) string {
	return render(ColorBlueStyle, s)
}

func Cyan(s string) string {
	return render(ColorCyanStyle, s)
}

func Magenta(s string) string {
	return render(ColorMagentaStyle, s)
}

// Section renders a status section heading.
func Section(text string) string {
	return render(SectionStyle, text)
}

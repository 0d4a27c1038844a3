package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorError).Bold(true),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
}

// Status tags keep the fixed-width "[ OK ]" convention.
var (
	tagOK   = styles.Success.Render("[ OK ]")
	tagSkip = lipgloss.NewStyle().Foreground(colorWarning).Render("[SKIP]")
	tagSame = styles.Muted.Render("[ -- ]")
	tagWarn = lipgloss.NewStyle().Foreground(colorWarning).Render("[WARN]")
)

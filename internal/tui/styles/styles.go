package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted values such as file paths.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green)
)

// --- Key bindings ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// Card is a rounded-border panel for content sections.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(DimGray).
	Padding(1, 2)

// Field is one label/value row in a detail block.
type Field struct {
	Label string
	Value string
}

// Fields renders aligned label/value rows. Values wider than maxValue cells
// are truncated with an ellipsis; maxValue <= 0 disables truncation.
func Fields(fields []Field, maxValue int) string {
	width := 0
	for _, f := range fields {
		if w := ansi.StringWidth(f.Label); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		value := f.Value
		if maxValue > 0 {
			value = ansi.Truncate(value, maxValue, "…")
		}
		label := f.Label + ":" + strings.Repeat(" ", width-ansi.StringWidth(f.Label)+1)
		b.WriteString(Label.Render(label))
		b.WriteString(Value.Render(value))
	}
	return b.String()
}

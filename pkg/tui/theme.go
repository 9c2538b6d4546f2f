package tui

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the reflect UI.
type Theme struct {
	Header       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Question     lipgloss.Style
	FieldFrame   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldError   lipgloss.Style
	Hint         lipgloss.Style
	Progress     lipgloss.Style
	EntryDate    lipgloss.Style
	EntryWhen    lipgloss.Style
	Footer       lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastFading  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		TabActive:    lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Question:     lipgloss.NewStyle().Bold(true),
		FieldFrame:   field,
		FieldFocused: field.BorderForeground(lipgloss.Color("212")),
		FieldError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Progress:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryDate:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		EntryWhen:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ToastSuccess: toast.Foreground(lipgloss.Color("42")),
		ToastError:   toast.Foreground(lipgloss.Color("203")),
		ToastInfo:    toast.Foreground(lipgloss.Color("39")),
		ToastFading:  toast.Faint(true),
	}
}

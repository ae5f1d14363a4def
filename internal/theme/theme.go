package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Legend        *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Placeholder   *lipgloss.Style
	Cursor        *lipgloss.Style
	Frame         *lipgloss.Style
	FrameTitle    *lipgloss.Style
	Session       *lipgloss.Style
	SessionActive *lipgloss.Style
	Pane          *lipgloss.Style
	PaneActive    *lipgloss.Style
	CurrentPane   *lipgloss.Style
	Tree          *lipgloss.Style
	Selected      *lipgloss.Style
	SelectedMark  *lipgloss.Style
	Info          *lipgloss.Style
	PreviewLabel  *lipgloss.Style
	PreviewError  *lipgloss.Style
	FooterKey     *lipgloss.Style
	FooterText    *lipgloss.Style
	OverlayBorder *lipgloss.Style
	OverlayTitle  *lipgloss.Style
	OverlayInput  *lipgloss.Style
	OverlayHint   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Legend: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FrameTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Session: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	),
	SessionActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Pane: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	PaneActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	),
	CurrentPane: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Tree: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("238")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PreviewLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	PreviewError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	FooterText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	OverlayBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	OverlayInput: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	OverlayHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

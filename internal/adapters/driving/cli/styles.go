package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

// styles holds the lipgloss styles for listing output. The renderer is bound
// to the command's writer, so piped output carries no escape codes.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	return &styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// status colours an invocation status.
func (s *styles) status(st domain.InvocationStatus) string {
	switch st {
	case domain.StatusComplete, domain.StatusDone:
		return s.Success.Render(string(st))
	case domain.StatusPartial, domain.StatusQuit:
		return s.Warning.Render(string(st))
	case domain.StatusFailed:
		return s.Error.Render(string(st))
	default:
		return string(st)
	}
}

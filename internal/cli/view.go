package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

var viewFrame = lipgloss.NewStyle().Padding(1, 2)

func (m *timerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	switch m.eng.State() {
	case engine.StateSetup:
		m.renderSetup(&b)
	case engine.StateRunning, engine.StatePaused:
		m.renderCountdown(&b)
	case engine.StateCompleted:
		m.renderCompleted(&b)
	}
	return viewFrame.Render(b.String())
}

func (m *timerModel) renderSetup(b *strings.Builder) {
	b.WriteString(StyleHeader.Render("tempo") + StyleDim.Render(" · new session") + "\n\n")
	b.WriteString(m.form.View())
	if m.errText != "" {
		b.WriteString("\n" + StyleErr.Render(m.errText))
	}
}

func (m *timerModel) renderCountdown(b *strings.Builder) {
	s := m.eng.Session()

	b.WriteString(CategoryLabel(s.Category))
	if s.Intention != "" {
		b.WriteString(StyleDim.Render(" · ") + StyleFg.Render(s.Intention))
	}
	b.WriteString("\n\n")

	b.WriteString(StyleClock.Render(formatClock(m.eng.RemainingSeconds())))
	if m.eng.State() == engine.StatePaused {
		b.WriteString("  " + StylePaused.Render("PAUSED"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.eng.RemainingPercent()/100) + "\n")

	if tip := s.AIMotivation; tip != "" {
		b.WriteString("\n" + StyleTip.Render(tip) + "\n")
	}

	b.WriteString("\n" + StyleDim.Render(m.countdownHelp()))
}

func (m *timerModel) countdownHelp() string {
	toggle := "space pause"
	if m.eng.State() == engine.StatePaused {
		toggle = "space resume"
	}
	return toggle + " · a abandon · q quit"
}

func (m *timerModel) renderCompleted(b *strings.Builder) {
	s := m.eng.Session()

	b.WriteString(StyleDone.Render("Session complete") + "\n\n")
	b.WriteString(CategoryLabel(s.Category) + StyleDim.Render(fmt.Sprintf(" · %d min", s.DurationMinutes)))
	if s.Intention != "" {
		b.WriteString(StyleDim.Render(" · ") + StyleFg.Render(s.Intention))
	}
	b.WriteString("\n")

	if msg := m.eng.Celebration(); msg != "" {
		b.WriteString("\n" + StyleTip.Render(msg) + "\n")
	}

	b.WriteString("\n" + StyleDim.Render("enter new session · q quit"))
}

// formatClock renders whole seconds as M:SS or H:MM:SS.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/router"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/screens/portal"
	"github.com/asengupta/cyberquest/internal/store"
	"github.com/asengupta/cyberquest/internal/ui/layout"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// backHandler lets a screen run cleanup when the learner backs out of it.
type backHandler interface {
	OnBack()
}

// saveWarningMsg reports a failed or dropped persistence write.
type saveWarningMsg struct {
	err error
}

// waitForWarning blocks on the warning channel and turns the next
// persistence failure into a message for the banner.
func waitForWarning(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return saveWarningMsg{err: err}
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng    *engine.Engine
	router *router.Router
	warnCh <-chan error
	notice string
	width  int
	height int
}

// newAppModel creates the root model opening on the portal. warnCh may be
// nil for anonymous sessions, which have no persistence to fail.
func newAppModel(eng *engine.Engine, lbRepo store.LeaderboardRepo, warnCh <-chan error) AppModel {
	return AppModel{
		eng:    eng,
		router: router.New(portal.New(eng, lbRepo)),
		warnCh: warnCh,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.warnCh == nil {
		return nil
	}
	return waitForWarning(m.warnCh)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveWarningMsg:
		m.notice = fmt.Sprintf("⚠ Progress may not be saved: %v · Ctrl+X to dismiss", msg.err)
		return m, waitForWarning(m.warnCh)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x":
			m.notice = ""
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				if h, ok := m.router.Active().(backHandler); ok {
					h.OnBack()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.eng.Stats()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  st.Level,
		XP:     st.XP,
		Streak: st.Streak,
	}, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	if m.notice != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, renderNoticeBanner(m.notice, m.width))
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// renderNoticeBanner renders a warning banner below the header.
func renderNoticeBanner(notice string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(width).
		Align(lipgloss.Center).
		Render(notice)
}

// Run starts the Bubble Tea program. lbRepo and warnCh may be nil for
// anonymous sessions.
func Run(eng *engine.Engine, lbRepo store.LeaderboardRepo, warnCh <-chan error) error {
	p := tea.NewProgram(newAppModel(eng, lbRepo, warnCh))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

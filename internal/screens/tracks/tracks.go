package tracks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/router"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/ui/components"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// TracksScreen lists the challenge tracks with per-track completion.
type TracksScreen struct {
	eng  *engine.Engine
	menu components.Menu
}

var _ screen.Screen = (*TracksScreen)(nil)

// New creates the track list.
func New(eng *engine.Engine) *TracksScreen {
	items := make([]components.MenuItem, 0, len(catalog.Tracks()))
	for _, tr := range catalog.Tracks() {
		track := tr
		items = append(items, components.MenuItem{
			Label: track.Category.Icon() + " " + track.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newTaskScreen(eng, track)}
				}
			},
		})
	}

	return &TracksScreen{
		eng:  eng,
		menu: components.NewMenu(items),
	}
}

func (t *TracksScreen) Init() tea.Cmd {
	return nil
}

func (t *TracksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TracksScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("SECURITY TRACKS"))

	var summary []string
	for _, tr := range catalog.Tracks() {
		done := len(t.eng.CompletedTasks(tr.Category))
		summary = append(summary, fmt.Sprintf("%s %s — %d/%d tasks · %d XP pool",
			tr.Category.Icon(), tr.Name, done, len(tr.Tasks), tr.TotalXP()))
	}
	sections = append(sections, theme.Card.Width(min(width-4, 64)).Render(
		theme.Body.Render(strings.Join(summary, "\n"))))

	sections = append(sections, t.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (t *TracksScreen) Title() string {
	return "Tracks"
}

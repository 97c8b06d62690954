package portal

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/router"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/screens/exercise"
	"github.com/asengupta/cyberquest/internal/screens/leaderboard"
	"github.com/asengupta/cyberquest/internal/screens/path"
	"github.com/asengupta/cyberquest/internal/screens/tracks"
	"github.com/asengupta/cyberquest/internal/stats"
	"github.com/asengupta/cyberquest/internal/store"
	"github.com/asengupta/cyberquest/internal/ui/components"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// PortalScreen is the main hub: the learner's headline numbers, the weekly
// challenge board, and navigation into the game modes.
type PortalScreen struct {
	eng  *engine.Engine
	menu components.Menu
}

var _ screen.Screen = (*PortalScreen)(nil)

// New creates the portal. lbRepo may be nil for anonymous sessions; the
// leaderboard then shows only the local learner.
func New(eng *engine.Engine, lbRepo store.LeaderboardRepo) *PortalScreen {
	items := []components.MenuItem{
		{Label: "CONTINUE CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: exercise.New(eng)}
			}
		}},
		{Label: "SECURITY TRACKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tracks.New(eng)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(eng, lbRepo)}
			}
		}},
		{Label: "LEARNING PATH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: path.New(eng)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &PortalScreen{
		eng:  eng,
		menu: components.NewMenu(items),
	}
}

func (p *PortalScreen) Init() tea.Cmd {
	return nil
}

func (p *PortalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PortalScreen) View(width, height int) string {
	st := p.eng.Stats()

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("CYBERQUEST PORTAL"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Train. Defend. Level up."))
	sections = append(sections, p.renderStatsCard(st, width))
	sections = append(sections, p.renderChallengeBoard(width))
	sections = append(sections, p.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (p *PortalScreen) Title() string {
	return "Portal"
}

func (p *PortalScreen) renderStatsCard(st stats.UserStats, width int) string {
	into := stats.XPIntoLevel(st.XP)
	bar := components.NewProgressBar("Next level", into, stats.XPPerLevel, true, 44)

	line := fmt.Sprintf("Level %d   %d XP   🔥 %d day streak   %d modules done",
		st.Level, st.XP, st.Streak, st.CompletedModules)

	card := theme.Body.Render(line) + "\n" + bar.View()
	return theme.Card.Width(min(width-4, 60)).Render(card)
}

func (p *PortalScreen) renderChallengeBoard(width int) string {
	var lines []string
	lines = append(lines, theme.Body.Bold(true).Render("Weekly Challenges"))
	for _, ch := range p.eng.Challenges() {
		label := ch.Category.Icon() + " " + ch.Title
		if ch.Completed {
			label = theme.Done.Render(label + "  ✓ +" + fmt.Sprintf("%d XP", ch.XPReward))
			lines = append(lines, label)
			continue
		}
		bar := components.NewProgressBar(label, ch.Current, ch.Target, true, 52)
		lines = append(lines, bar.View())
	}
	return theme.Card.Width(min(width-4, 60)).Render(strings.Join(lines, "\n"))
}

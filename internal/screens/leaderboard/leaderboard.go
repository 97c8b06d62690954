package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/stats"
	"github.com/asengupta/cyberquest/internal/store"
	"github.com/asengupta/cyberquest/internal/ui/components"
	"github.com/asengupta/cyberquest/internal/ui/layout"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// localName is how the session learner appears in the standings.
const localName = "You"

type standingsLoadedMsg struct {
	Rows []store.LeaderboardRecord
	Err  error
}

// LeaderboardScreen shows the global standings with the local learner
// merged in, plus the weekly challenge board.
type LeaderboardScreen struct {
	eng    *engine.Engine
	lbRepo store.LeaderboardRepo

	rows   []store.LeaderboardRecord
	loaded bool
	errMsg string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates the leaderboard. lbRepo may be nil; the standings then contain
// only the local learner.
func New(eng *engine.Engine, lbRepo store.LeaderboardRepo) *LeaderboardScreen {
	return &LeaderboardScreen{eng: eng, lbRepo: lbRepo}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	if s.lbRepo == nil {
		return func() tea.Msg { return standingsLoadedMsg{} }
	}
	return func() tea.Msg {
		rows, err := s.lbRepo.Top(context.Background(), 0)
		return standingsLoadedMsg{Rows: rows, Err: err}
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(standingsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.rows = m.Rows
		}
		s.loaded = true
	}
	return s, nil
}

// standings merges the local learner into the stored rows and re-sorts.
func (s *LeaderboardScreen) standings() []store.LeaderboardRecord {
	st := s.eng.Stats()
	rows := append([]store.LeaderboardRecord(nil), s.rows...)
	rows = append(rows, store.LeaderboardRecord{
		Name:   localName,
		XP:     st.XP,
		Level:  st.Level,
		Streak: st.Streak,
		Badge:  string(stats.BadgeForLevel(st.Level)),
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].XP > rows[j].XP })
	return rows
}

func (s *LeaderboardScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("LEADERBOARD"))

	if !s.loaded {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render("loading standings..."))
		return strings.Join(sections, "\n\n")
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render("  "+s.errMsg))
	}

	rows := s.standings()

	var lines []string
	for i, row := range rows {
		rank := fmt.Sprintf("%2d.", i+1)
		switch i {
		case 0:
			rank = "🥇 "
		case 1:
			rank = "🥈 "
		case 2:
			rank = "🥉 "
		}
		line := fmt.Sprintf("%s %-14s  %6d XP   Lv %-3d 🔥 %-3d %s",
			rank, row.Name, row.XP, row.Level, row.Streak, row.Badge)
		if row.Name == localName {
			lines = append(lines, theme.Selected.Render(line))
		} else {
			lines = append(lines, theme.Body.Render(line))
		}
	}
	sections = append(sections, theme.Card.Width(min(width-4, 66)).Render(strings.Join(lines, "\n")))

	sections = append(sections, s.renderWeekly(width))

	return strings.Join(sections, "\n\n")
}

func (s *LeaderboardScreen) renderWeekly(width int) string {
	var lines []string
	lines = append(lines, theme.Body.Bold(true).Render("This Week"))
	for _, ch := range s.eng.Challenges() {
		if ch.Completed {
			lines = append(lines, theme.Done.Render(
				fmt.Sprintf("%s %s ✓ +%d XP", ch.Category.Icon(), ch.Title, ch.XPReward)))
			continue
		}
		bar := components.NewProgressBar(ch.Category.Icon()+" "+ch.Title, ch.Current, ch.Target, true, 56)
		lines = append(lines, bar.View())
	}
	return theme.Card.Width(min(width-4, 66)).Render(strings.Join(lines, "\n"))
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

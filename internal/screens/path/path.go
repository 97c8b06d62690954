package path

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/ui/layout"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// PathScreen shows the learning path: the curriculum modules with the
// learner's completed count. Modules earlier than the completed count are
// shown done; the next one is in progress.
type PathScreen struct {
	eng    *engine.Engine
	cursor int
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

// New creates the learning path screen.
func New(eng *engine.Engine) *PathScreen {
	return &PathScreen{eng: eng}
}

func (p *PathScreen) Init() tea.Cmd {
	return nil
}

func (p *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(catalog.Modules())-1 {
			p.cursor++
		}
	}
	return p, nil
}

// completedBeforePath is how many of the profile's completed modules belong
// to retired curriculum that predates the current path.
const completedBeforePath = 21

func (p *PathScreen) View(width, height int) string {
	completed := p.eng.Stats().CompletedModules
	modules := catalog.Modules()

	donePath := completed - completedBeforePath
	if donePath < 0 {
		donePath = 0
	}
	if donePath > len(modules) {
		donePath = len(modules)
	}

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("LEARNING PATH"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d modules completed", completed)))

	var rows []string
	for i, mod := range modules {
		status := "○"
		style := theme.Unselected
		switch {
		case i < donePath:
			status = "✓"
			style = theme.Done
		case i == donePath:
			status = "▶"
			style = theme.Body
		default:
			style = theme.Hint
		}

		line := fmt.Sprintf("%s %s  (%s · %s)", status, mod.Title, mod.Duration, mod.Difficulty)
		if i == p.cursor {
			rows = append(rows, theme.Selected.Render("  ▸ "+line))
			rows = append(rows, theme.Hint.Render("      "+mod.Description))
		} else {
			rows = append(rows, style.Render("    "+line))
		}
	}
	sections = append(sections, theme.Card.Width(min(width-4, 70)).Render(strings.Join(rows, "\n")))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (p *PathScreen) Title() string {
	return "Learning Path"
}

func (p *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

package tracks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/ui/components"
	"github.com/asengupta/cyberquest/internal/ui/layout"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// taskScreen shows one track's tasks and completes them in place.
type taskScreen struct {
	eng    *engine.Engine
	track  catalog.Track
	cursor int
	toast  string
}

var _ screen.Screen = (*taskScreen)(nil)
var _ screen.KeyHintProvider = (*taskScreen)(nil)

func newTaskScreen(eng *engine.Engine, track catalog.Track) *taskScreen {
	return &taskScreen{eng: eng, track: track}
}

func (t *taskScreen) Init() tea.Cmd {
	return nil
}

func (t *taskScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.track.Tasks)-1 {
			t.cursor++
		}
	case "enter":
		t.completeSelected()
	}
	return t, nil
}

func (t *taskScreen) completeSelected() {
	if t.cursor < 0 || t.cursor >= len(t.track.Tasks) {
		return
	}
	task := t.track.Tasks[t.cursor]

	out := t.eng.CompleteTask(t.track.Category, task.ID)
	switch {
	case out.AlreadyComplete:
		t.toast = theme.Hint.Render("Already complete — no XP awarded")
	case out.Completion != nil:
		t.toast = theme.Correct.Render(fmt.Sprintf("+%d XP · 🏆 %s complete! +%d XP bonus",
			out.TaskXP, out.Completion.Title, out.Completion.XPReward))
	default:
		t.toast = theme.Correct.Render(fmt.Sprintf("+%d XP", out.TaskXP))
	}
}

func (t *taskScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(strings.ToUpper(t.track.Name)))
	sections = append(sections, theme.Subtitle.Width(width).Render(t.track.Description))

	current, target := t.eng.ChallengeProgress(t.track.Category)
	bar := components.NewProgressBar("Weekly challenge", current, target, true, 48)
	sections = append(sections, "  "+bar.View())

	var rows []string
	for i, task := range t.track.Tasks {
		mark := "☐"
		style := theme.Unselected
		if t.eng.IsTaskComplete(t.track.Category, task.ID) {
			mark = "✓"
			style = theme.Done
		}
		line := fmt.Sprintf("%s %s  [%s · %d XP]", mark, task.Title, task.Difficulty, task.XPReward)
		if i == t.cursor {
			rows = append(rows, theme.Selected.Render("  ▸ "+line))
		} else {
			rows = append(rows, style.Render("    "+line))
		}
	}
	sections = append(sections, strings.Join(rows, "\n"))

	if t.toast != "" {
		sections = append(sections, "  "+t.toast)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (t *taskScreen) Title() string {
	return t.track.Category.DisplayName()
}

func (t *taskScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Complete task"},
		{Key: "Esc", Description: "Back"},
	}
}

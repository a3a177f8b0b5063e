// Package roadmap renders the gated lesson list: every lesson with its
// difficulty, activity markers, and lock state, in fixed course order.
package roadmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"viteroad/internal/catalog"
	"viteroad/internal/course"
	"viteroad/internal/progress"
	"viteroad/internal/router"
	"viteroad/internal/screen"
	"viteroad/internal/screens/lesson"
	"viteroad/internal/ui/components"
	"viteroad/internal/ui/layout"
	"viteroad/internal/ui/theme"
)

// RoadmapScreen displays the course roadmap.
type RoadmapScreen struct {
	state        *course.State
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*RoadmapScreen)(nil)

// New creates a roadmap positioned on the current lesson.
func New(state *course.State) *RoadmapScreen {
	s := &RoadmapScreen{state: state}
	for i, l := range state.Lessons {
		if l.ID == state.Progress.CurrentLessonID {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.state.Lessons)-1 {
				s.cursor++
			}
		case "g":
			s.cursor = 0
		case "G":
			s.cursor = len(s.state.Lessons) - 1
		case "enter":
			return s, s.openLesson()
		}
	}
	return s, nil
}

// openLesson enters the lesson under the cursor unless it is locked.
func (s *RoadmapScreen) openLesson() tea.Cmd {
	if s.cursor >= len(s.state.Lessons) {
		return nil
	}
	l := s.state.Lessons[s.cursor]
	if s.state.Classify()[l.ID] == progress.StatusLocked {
		return nil
	}
	if err := s.state.Select(l.ID); err != nil {
		return nil
	}
	next := lesson.New(s.state, l)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	if len(s.state.Lessons) == 0 {
		return ""
	}

	s.adjustScroll(height - 2)

	statuses := s.state.Classify()

	var lines []string
	lines = append(lines, s.renderSummary(width))
	visible := 1
	for i, l := range s.state.Lessons {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		lines = append(lines, s.renderLessonRow(l, statuses[l.ID], i == s.cursor, width))
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

// KeyHints returns the key binding hints for the footer.
func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// adjustScroll keeps the cursor inside the viewport.
func (s *RoadmapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// renderSummary renders the course position and completion bar above the list.
func (s *RoadmapScreen) renderSummary(width int) string {
	done := s.state.Progress.CompletedCount()
	total := len(s.state.Lessons)

	barWidth := width - 40
	if barWidth > 40 {
		barWidth = 40
	}
	var bar string
	if barWidth >= 10 && total > 0 {
		bar = "  " + components.NewProgressBar("", float64(done)/float64(total), true, barWidth).View()
	}

	text := fmt.Sprintf("Course map — %d of %d units complete", done, total)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 0, 0, 2).
		Width(width).
		Render(text + bar)
}

// renderLessonRow renders one lesson line.
func (s *RoadmapScreen) renderLessonRow(l catalog.Lesson, status progress.Status, selected bool, width int) string {
	icon, iconStyle := statusIcon(status)

	activity := "read"
	if l.HasQuiz() {
		activity = "quiz"
	} else if l.HasPractice() {
		activity = "code"
	}

	padding := 4
	iconWidth := 3
	diffWidth := 14
	activityWidth := 6
	spacing := 4
	titleWidth := width - padding - iconWidth - diffWidth - activityWidth - spacing
	if titleWidth < 10 {
		titleWidth = 10
	}

	// Cut by rune, not byte: slicing a multibyte title mid-rune would
	// mangle the row.
	title := l.Title
	if runes := []rune(title); len(runes) > titleWidth {
		title = string(runes[:titleWidth-1]) + "…"
	}

	var titleStyle, diffStyle, activityStyle lipgloss.Style
	switch {
	case selected:
		titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		diffStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		activityStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case status == progress.StatusLocked:
		titleStyle = theme.LockedStyle
		diffStyle = theme.LockedStyle
		activityStyle = theme.LockedStyle
	case status == progress.StatusCompleted:
		titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		diffStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		activityStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
		diffStyle = lipgloss.NewStyle().Foreground(theme.DifficultyColor(string(l.Difficulty)))
		activityStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	pad := titleWidth - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	titlePadded := title + strings.Repeat(" ", pad)
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		iconStyle.Render(icon),
		titleStyle.Render(titlePadded),
		diffStyle.Render(fmt.Sprintf("%-12s", string(l.Difficulty))),
		activityStyle.Render(activity),
	)
}

// statusIcon maps a gating status to its marker.
func statusIcon(status progress.Status) (string, lipgloss.Style) {
	switch status {
	case progress.StatusCompleted:
		return "✓", lipgloss.NewStyle().Foreground(theme.Success)
	case progress.StatusNext:
		return "●", lipgloss.NewStyle().Foreground(theme.Primary)
	default:
		return "·", theme.LockedStyle
	}
}

package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"viteroad/internal/progress"
	"viteroad/internal/quiz"
	"viteroad/internal/ui/components"
	"viteroad/internal/ui/markdown"
	"viteroad/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.celebrating {
		return s.renderCelebration(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderTabs())
	b.WriteString("\n\n")

	switch s.tabs[s.active] {
	case tabLearn:
		b.WriteString(s.renderLearn(width))
	case tabQuiz:
		b.WriteString(s.renderQuiz(width))
	case tabPractice:
		b.WriteString(s.renderPractice(width))
	}

	return b.String()
}

func (s *LessonScreen) renderTabs() string {
	parts := make([]string, 0, len(s.tabs))
	for i, t := range s.tabs {
		label := " " + t.label() + " "
		if i == s.active {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Primary).
				Bold(true).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (s *LessonScreen) renderLearn(width int) string {
	var b strings.Builder

	diff := string(s.lesson.Difficulty)
	chip := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(diff)).
		Bold(true).
		Render(strings.ToUpper(diff))
	tag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("· " + string(s.lesson.Visual))
	b.WriteString("  " + chip + "  " + tag + "\n\n")

	contentWidth := width - 6
	if contentWidth > 90 {
		contentWidth = 90
	}
	b.WriteString(markdown.Render(s.lesson.Content, contentWidth))
	b.WriteString("\n")

	if s.lesson.CodeSnippet != "" {
		snippet := lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Render(s.lesson.CodeSnippet)
		b.WriteString("\n" + snippet + "\n")
	}

	if panel := s.renderInsight(contentWidth); panel != "" {
		b.WriteString("\n" + panel)
	}

	if s.state.Progress.IsCompleted(s.lesson.ID) {
		b.WriteString("\n" + theme.Correct.Render("  ✓ Unit complete"))
	}

	return b.String()
}

// renderInsight shows the tutor panel under the lesson text.
func (s *LessonScreen) renderInsight(width int) string {
	if s.insightPending {
		return theme.Hint.Render("  Tutor is thinking…")
	}
	if s.insight == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.insight.Headline))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.insight.Body))
	for _, p := range s.insight.KeyPoints {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("• "+p))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Width(width).
		Render(b.String())
}

func (s *LessonScreen) renderQuiz(width int) string {
	q := s.quizRun
	if q.Phase() == quiz.PhaseFinished {
		return s.renderQuizFinished()
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Question %d of %d · score %d", q.Index()+1, q.Total(), q.Score())))
	b.WriteString("\n\n")

	question := q.Question()
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.Question))
	b.WriteString("\n\n")

	labels := []string{"A", "B", "C", "D", "E"}
	for i, opt := range question.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "   "
		if q.Phase() == quiz.PhaseAwaitingAnswer && i == s.optionCursor {
			prefix = " ▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case q.Phase() == quiz.PhaseAnswered && opt == question.CorrectAnswer:
			b.WriteString(theme.Correct.Render(line))
		case q.Phase() == quiz.PhaseAnswered && opt == q.Selected():
			b.WriteString(theme.Incorrect.Render(line))
		case q.Phase() == quiz.PhaseAwaitingAnswer && i == s.optionCursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if q.Phase() == quiz.PhaseAnswered {
		verdict := theme.Correct.Render("  Correct!")
		if !q.LastCorrect() {
			verdict = theme.Incorrect.Render("  Not quite.")
		}
		b.WriteString("\n" + verdict + "\n")
		b.WriteString(theme.Hint.Render("  " + question.Explanation) + "\n")
	}

	return b.String()
}

func (s *LessonScreen) renderQuizFinished() string {
	q := s.quizRun
	var b strings.Builder

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Unit quiz finished"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Score: %d/%d\n", q.Score(), q.Total()))
	b.WriteString(fmt.Sprintf("  Proficiency: %d%%\n", q.Proficiency()))
	if q.Total() > 0 {
		bar := components.NewProgressBar("", float64(q.Score())/float64(q.Total()), false, 40)
		b.WriteString("  " + bar.View() + "\n")
	}

	if s.state.Progress.IsCompleted(s.lesson.ID) {
		b.WriteString("\n" + theme.Correct.Render("  ✓ Unit complete"))
	}
	b.WriteString("\n\n" + theme.Hint.Render("  Press R to retry the unit. Your completion is safe."))
	return b.String()
}

func (s *LessonScreen) renderPractice(width int) string {
	ch := s.sandbox.Challenge()
	var b strings.Builder

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(ch.Title))
	if s.sandbox.Solved() {
		b.WriteString("  " + theme.Correct.Render("✓ verified"))
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  " + ch.Description))
	b.WriteString("\n\n")

	editorWidth := width - 8
	if editorWidth > 90 {
		editorWidth = 90
	}
	if editorWidth > 10 {
		s.editor.SetSize(editorWidth, 12)
	}
	b.WriteString(s.editor.View())
	b.WriteString("\n")

	if url := s.previewURL(); url != "" {
		b.WriteString(theme.Hint.Render("  Live preview: " + url + " · edits apply as you type"))
	} else {
		b.WriteString(theme.Hint.Render("  Preview server disabled."))
	}

	return b.String()
}

func (s *LessonScreen) previewURL() string {
	if s.state.Preview == nil {
		return ""
	}
	return s.state.Preview.URL()
}

func (s *LessonScreen) renderCelebration(width, height int) string {
	inner := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Unit complete!") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("★ +%d points · total %d", progress.PointsPerLesson, s.state.Progress.Points)) +
		"\n\n" +
		theme.Hint.Render("N next unit · Esc stay here")

	card := theme.Card.Render(inner)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

package tutor

import (
	"fmt"
	"strings"
)

const insightSystemPrompt = `You are a pragmatic frontend tooling mentor. A developer is working through a course on Vite and wants one insight that goes deeper than the lesson text. Be concrete: name flags, files, and behaviors, not platitudes.`

func buildInsightUserMessage(input InsightInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", input.Lesson.Title))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", input.Lesson.Difficulty))
	if input.Completed {
		b.WriteString("Status: already completed, learner is reviewing\n")
	} else {
		b.WriteString("Status: in progress\n")
	}
	if input.QuizTotal > 0 {
		b.WriteString(fmt.Sprintf("Last quiz: %d/%d correct\n", input.QuizScore, input.QuizTotal))
	}

	b.WriteString("\nLesson text:\n")
	b.WriteString(input.Lesson.Content)
	if input.Lesson.CodeSnippet != "" {
		b.WriteString("\n\nLesson snippet:\n")
		b.WriteString(input.Lesson.CodeSnippet)
	}

	b.WriteString("\n\nGive one insight that builds on this lesson without repeating it.")
	return b.String()
}

package tutor

import "viteroad/internal/catalog"

// Insight is a short AI-generated explainer for one lesson.
type Insight struct {
	LessonID  string
	Headline  string
	Body      string
	KeyPoints []string
}

// InsightInput carries the lesson context sent to the model.
type InsightInput struct {
	Lesson    catalog.Lesson
	Completed bool

	// QuizScore and QuizTotal describe the learner's last quiz run for
	// this lesson. Zero QuizTotal means no quiz was taken.
	QuizScore int
	QuizTotal int
}

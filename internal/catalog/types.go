package catalog

// Difficulty is the display tier of a lesson. It colors the roadmap badge
// only — unlocking is driven by catalog position, never by difficulty.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// AllDifficulties returns the tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// VisualTag selects a decorative concept diagram for a lesson. Opaque to
// the progress core; the roadmap renders it as a small chip.
type VisualTag string

const (
	VisualESMLoading   VisualTag = "esm-loading"
	VisualHMR          VisualTag = "hmr"
	VisualFolderTree   VisualTag = "folder-tree"
	VisualEnvFlow      VisualTag = "env-flow"
	VisualBundling     VisualTag = "bundling"
	VisualLibMode      VisualTag = "lib-mode"
	VisualCLIScaffold  VisualTag = "cli-scaffold"
	VisualProxyFlow    VisualTag = "proxy-flow"
	VisualTestingLoop  VisualTag = "testing-loop"
	VisualSSRHydration VisualTag = "ssr-hydration"
)

// QuizQuestion is a single multiple-choice question. Exactly one option
// must equal CorrectAnswer; option order is the display order.
type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// ChallengeType selects the preview harness for a practice challenge.
type ChallengeType string

const (
	ChallengeCSS  ChallengeType = "css"
	ChallengeJS   ChallengeType = "js"
	ChallengeHTML ChallengeType = "html"
)

// PracticeChallenge is a sandboxed code exercise attached to a lesson.
type PracticeChallenge struct {
	Title       string
	Description string
	InitialCode string
	Type        ChallengeType
}

// Lesson is one unit of curriculum content. The catalog order is fixed and
// defines the unlock sequence.
type Lesson struct {
	ID          string
	Title       string
	Difficulty  Difficulty
	Content     string
	CodeSnippet string         // optional illustrative code, empty if none
	Visual      VisualTag      // optional diagram tag, empty if none
	Quiz        []QuizQuestion // optional, nil if the lesson has no quiz
	Practice    *PracticeChallenge
}

// HasQuiz reports whether the lesson carries a quiz.
func (l Lesson) HasQuiz() bool { return len(l.Quiz) > 0 }

// HasPractice reports whether the lesson carries a practice challenge.
func (l Lesson) HasPractice() bool { return l.Practice != nil }

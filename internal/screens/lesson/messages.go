package lesson

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// insightTickMsg polls the tutor service for a finished insight.
type insightTickMsg time.Time

func pollInsight() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return insightTickMsg(t)
	})
}

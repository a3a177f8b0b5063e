package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"viteroad/internal/store"
)

// eventLogger records every completion as an event so `viteroad llm` can
// replay what was asked and what came back.
type eventLogger struct {
	next   Provider
	name   string
	events store.EventRepo
}

// WithEventLog wraps a provider with event-log recording. name is the
// configured provider name ("anthropic", "openai", ...).
func WithEventLog(p Provider, name string, repo store.EventRepo) Provider {
	return &eventLogger{next: p, name: name, events: repo}
}

func (l *eventLogger) Complete(ctx context.Context, task Task) (*Result, error) {
	start := time.Now()
	res, err := l.next.Complete(ctx, task)

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.next.ModelID(),
		Purpose:     task.Purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcribeTask(task),
	}
	if res != nil {
		data.Model = res.Model
		data.InputTokens = res.Tokens.Input
		data.OutputTokens = res.Tokens.Output
		data.ResponseBody = string(res.JSON)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Recording is best effort; a failed write never fails the task.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: tutor request not recorded: %v\n", logErr)
	}

	return res, err
}

func (l *eventLogger) ModelID() string { return l.next.ModelID() }

// transcribeTask renders the task the way `llm view` prints it back.
func transcribeTask(task Task) string {
	var b strings.Builder

	if task.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(task.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[prompt]\n")
	b.WriteString(task.Prompt)
	b.WriteString("\n")

	if task.Schema != nil {
		if def, err := json.Marshal(task.Schema.Definition); err == nil {
			b.WriteString(fmt.Sprintf("\n[schema %s]\n", task.Schema.Name))
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"viteroad/internal/catalog"
	"viteroad/internal/llm"
	"viteroad/internal/store"
	"viteroad/internal/tutor"
	"viteroad/internal/ui/markdown"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor <unit-id>",
	Short: "Generate a tutor insight for a unit",
	Long: `Generate and print the AI tutor insight for one course unit.

Useful for evaluating insight quality and prompt changes without
clicking through the TUI. Requires a configured LLM provider.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		lesson, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		insight, err := svc.Insight(ctx, tutor.InsightInput{Lesson: lesson})
		if err != nil {
			return fmt.Errorf("generate insight: %w", err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n\n%s\n", insight.Headline, insight.Body)
		for _, p := range insight.KeyPoints {
			fmt.Fprintf(&b, "\n- %s", p)
		}
		fmt.Println(markdown.Render(b.String(), 80))
		return nil
	},
}

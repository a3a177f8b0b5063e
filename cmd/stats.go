package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"viteroad/internal/catalog"
	"viteroad/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show course progress and activity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		snap, err := s.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		total := catalog.Len()
		completed := 0
		points := 0
		current := "none"
		if snap != nil {
			completed = len(snap.Data.CompletedLessons)
			points = snap.Data.Points
			if l, err := catalog.Get(snap.Data.CurrentLessonID); err == nil {
				current = l.Title
			}
		}

		fmt.Println("Course Progress")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Units completed:  %d / %d\n", completed, total)
		fmt.Printf("Points:           %d\n", points)
		fmt.Printf("Current unit:     %s\n", current)

		answers, err := repo.AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("answer stats: %w", err)
		}
		fmt.Println()
		fmt.Println("Quiz Activity")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Answers:          %d\n", answers.Total)
		if answers.Total > 0 {
			fmt.Printf("Correct:          %d (%.0f%%)\n",
				answers.Correct, float64(answers.Correct)/float64(answers.Total)*100)
		}

		practices, err := repo.PracticeStats(ctx)
		if err != nil {
			return fmt.Errorf("practice stats: %w", err)
		}
		fmt.Println()
		fmt.Println("Practice Activity")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Challenges solved: %d\n", practices.Verified)
		fmt.Printf("Sandbox resets:    %d\n", practices.Resets)

		limit, _ := cmd.Flags().GetInt("limit")
		completions, err := repo.QueryCompletions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query completions: %w", err)
		}
		if len(completions) > 0 {
			fmt.Println()
			fmt.Println("Recent Completions")
			fmt.Println(strings.Repeat("─", 60))
			for _, c := range completions {
				title := c.LessonID
				if l, err := catalog.Get(c.LessonID); err == nil {
					title = l.Title
				}
				fmt.Printf("%s  %-32s  via %-8s  +%d\n",
					c.Timestamp.Local().Format("2006-01-02 15:04"),
					title, c.Source, c.Points)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent completions to show")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"viteroad/internal/catalog"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the course units",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")

		lessons := catalog.Lessons()
		if difficulty != "" {
			filtered := lessons[:0:0]
			for _, l := range lessons {
				if strings.EqualFold(string(l.Difficulty), difficulty) {
					filtered = append(filtered, l)
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("no units with difficulty %q", difficulty)
			}
			lessons = filtered
		}

		fmt.Printf("%-5s  %-34s  %-12s  %s\n", "ID", "Title", "Difficulty", "Activity")
		fmt.Println(strings.Repeat("─", 72))
		for _, l := range lessons {
			activity := "read"
			switch {
			case l.HasQuiz():
				activity = fmt.Sprintf("quiz (%d questions)", len(l.Quiz))
			case l.HasPractice():
				activity = fmt.Sprintf("code (%s)", l.Practice.Type)
			}
			fmt.Printf("%-5s  %-34s  %-12s  %s\n", l.ID, l.Title, l.Difficulty, activity)
		}
		return nil
	},
}

func init() {
	lessonsCmd.Flags().StringP("difficulty", "d", "", "Filter by difficulty (Beginner, Intermediate, Advanced)")
}

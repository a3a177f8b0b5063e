package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"viteroad/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "viteroad",
	Short: "Interactive Vite course in the terminal",
	Long:  "Viteroad — a terminal course that teaches Vite through lessons, quizzes, and live-preview code practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	// A .env in the working directory supplies provider keys in development.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VITEROAD_DB env var)")
	rootCmd.Flags().Int("preview-port", 0, "Port for the live preview server (0 picks a free port)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VITEROAD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

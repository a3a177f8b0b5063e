package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viteroad/internal/app"
	"viteroad/internal/catalog"
	"viteroad/internal/course"
	"viteroad/internal/llm"
	"viteroad/internal/preview"
	"viteroad/internal/progress"
	"viteroad/internal/store"
	"viteroad/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lessons := catalog.Lessons()
	service := progress.NewService(st.SnapshotRepo(), st.EventRepo(), lessons)
	p, err := service.Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	state := &course.State{
		Ctx:      ctx,
		Lessons:  lessons,
		Progress: p,
		Service:  service,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor insights will be unavailable.")
	} else {
		state.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	port, _ := cmd.Flags().GetInt("preview-port")
	prev := preview.NewServer(nil)
	if err := prev.Start(port); err != nil {
		fmt.Fprintln(os.Stderr, "Preview server unavailable:", err)
	} else {
		defer prev.Shutdown(ctx)
		state.Preview = prev
	}

	return app.Run(app.Options{State: state})
}

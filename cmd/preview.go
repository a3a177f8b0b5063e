package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"viteroad/internal/catalog"
	"viteroad/internal/practice"
	"viteroad/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <unit-id>",
	Short: "Serve a unit's practice document over localhost",
	Long: `Serve the practice challenge of one unit in a browser, without the TUI.

Useful for inspecting the preview harness and the injected reload script.
The document is the challenge's initial code; stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		if !lesson.HasPractice() {
			return fmt.Errorf("unit %q has no practice challenge", lesson.ID)
		}

		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		port, _ := cmd.Flags().GetInt("port")
		srv := preview.NewServer(log)
		srv.SetDocument(practice.BuildDocument(lesson.Practice.Type, lesson.Practice.InitialCode))

		if err := srv.Start(port); err != nil {
			return err
		}
		defer srv.Shutdown(cmd.Context())

		fmt.Printf("Serving %q at %s (Ctrl+C to stop)\n", lesson.Practice.Title, srv.URL())

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

func init() {
	previewCmd.Flags().IntP("port", "p", 0, "Port to listen on (0 picks a free port)")
}

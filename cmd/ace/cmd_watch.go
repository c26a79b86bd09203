package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ace/workspace"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-parse .ace files whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if info, err := os.Stat(dir); err != nil {
				return fmt.Errorf("stat %s: %w", dir, err)
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			w := workspace.New(dir)
			watcher := workspace.NewFileWatcher(w, interval)
			watcher.OnChange = func(path string, doc *workspace.Document) {
				switch {
				case doc == nil:
					fmt.Fprintf(out, "%s: removed\n", path)
				case doc.ParseErr != nil:
					fmt.Fprintf(out, "%s: %v\n", path, doc.ParseErr)
				default:
					fmt.Fprintf(out, "%s: %s\n", path, doc.Expr)
				}
			}

			log.Infof("watching %s every %s", dir, interval)
			watcher.Start()
			<-ctx.Done()
			watcher.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval")

	return cmd
}

package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
	"github.com/jerryzhao173985/cursorlog/internal/notify"
	"github.com/jerryzhao173985/cursorlog/internal/output"
	"github.com/jerryzhao173985/cursorlog/internal/store"
)

var watchNotifyFlag bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint records whenever the snapshot changes",
	Long: `Watch the snapshot file and reprint the record list whenever another
process replaces it, typically a 'cursorlog update' running elsewhere
or on a schedule.

The current snapshot prints once on startup. Stop with Ctrl-C.

With --notify, a desktop notification is sent when the newest version
changes.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func init() {
	watchCmd.GroupID = GroupTracking
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchNotifyFlag, "notify", false,
		"Send a desktop notification when the newest version changes")
}

func runWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	watcher, err := store.NewWatcher(store.New(cfg.StateDir))
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "starting watcher")
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updates, err := watcher.Watch(ctx)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "watching state directory",
			"Check permissions on "+cfg.StateDir)
	}

	out := cmd.OutOrStdout()
	opts := changelog.FormatOptions{Plain: plainFlag}

	notifier := notify.NewNotifier()
	var lastSeen string
	first := true

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for records := range updates {
			output.PrintSeparator(out, "cursorlog")
			if len(records) == 0 {
				fmt.Fprintln(out, "Snapshot is empty.")
				continue
			}
			if err := changelog.FormatRecords(records, out, opts); err != nil {
				return fmt.Errorf("formatting records: %w", err)
			}

			if latest, ok := changelog.Latest(records); ok {
				if watchNotifyFlag && !first && latest.Version != lastSeen {
					notifier.Notify("cursorlog",
						fmt.Sprintf("Cursor %s: %s", latest.Version, latest.Description))
				}
				lastSeen = latest.Version
			}
			first = false
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return watcher.Close()
	})

	return g.Wait()
}

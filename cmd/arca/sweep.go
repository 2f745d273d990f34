package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/arca/pkg/logging"
	"github.com/arthur-debert/arca/pkg/scheduler"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one auto-archive pass over all enabled rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}

		total := a.orchestrator.RunSweep(cmd.Context())
		fmt.Printf("archived %d files\n", total)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the auto-archive sweep on the configured schedule",
	Long: `Run sweeps at the configured frequency until interrupted. Settings
changes are picked up while running: a new frequency reschedules the
timer, and rule or archive-folder changes apply to the next sweep.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		logger := logging.GetLogger("watch")

		sched := scheduler.New(func() {
			a.orchestrator.RunSweep(cmd.Context())
		})
		freq := a.store.Snapshot().AutoArchiveFrequency
		sched.Start(time.Duration(freq) * time.Minute)
		defer sched.Stop()
		fmt.Printf("sweeping every %d minutes\n", freq)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Warn().Err(err).Msg("settings watch unavailable, frequency changes need a restart")
		} else {
			defer func() { _ = watcher.Close() }()
			// Watch the directory: editors replace files on save
			if err := watcher.Add(dirOf(a.store.Path())); err != nil {
				logger.Warn().Err(err).Str("path", a.store.Path()).Msg("failed to watch settings file")
			}
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case <-sig:
				fmt.Println("stopping")
				return nil
			case event, ok := <-watcherEvents(watcher):
				if !ok {
					continue
				}
				if event.Name != a.store.Path() {
					continue
				}
				if err := a.store.Load(); err != nil {
					logger.Warn().Err(err).Msg("failed to reload settings")
					continue
				}
				newFreq := a.store.Snapshot().AutoArchiveFrequency
				if newFreq != freq {
					freq = newFreq
					sched.Reschedule(time.Duration(freq) * time.Minute)
					fmt.Printf("rescheduled: sweeping every %d minutes\n", freq)
				}
			case err, ok := <-watcherErrors(watcher):
				if ok && err != nil {
					logger.Warn().Err(err).Msg("settings watcher error")
				}
			}
		}
	},
}

func dirOf(path string) string {
	return filepath.Dir(path)
}

// watcherEvents returns the watcher's event channel, or a nil channel
// (blocking forever) when the watcher could not be created.
func watcherEvents(w *fsnotify.Watcher) chan fsnotify.Event {
	if w == nil {
		return nil
	}
	return w.Events
}

func watcherErrors(w *fsnotify.Watcher) chan error {
	if w == nil {
		return nil
	}
	return w.Errors
}

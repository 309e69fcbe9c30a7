package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/wirelineio/wns-docs/internal/build"
	"github.com/wirelineio/wns-docs/internal/daemon"
	"github.com/wirelineio/wns-docs/internal/emit"
	"github.com/wirelineio/wns-docs/internal/logfields"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output      string        `short:"o" help:"Output file (overrides output.path)" type:"path"`
	Format      string        `short:"f" help:"Output format: js, json or yaml"`
	Debounce    time.Duration `help:"Quiet period before regenerating" default:"500ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9102)"`
}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, global, root)
}

// run regenerates on change. The configuration is reloaded on every change
// and the watch set follows it, so a newly added theme options file is
// picked up without a restart.
func (w *WatchCmd) run(ctx context.Context, global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	opts := build.Options{OutputPath: w.Output, Format: emit.Format(w.Format)}
	svc := global.service()
	metrics := daemon.NewMetrics()

	start := time.Now()
	_, err = svc.Generate(ctx, cfg, opts)
	metrics.Record(err, time.Since(start))
	if err != nil {
		return err
	}

	var watcher *daemon.Watcher
	regenerate := func(ctx context.Context) error {
		next, err := loadConfig(root)
		if err != nil {
			return err
		}
		if err := watcher.Watch(next.WatchPaths(root.Config)); err != nil {
			slog.Warn("Failed to update watched files", logfields.Error(err))
		}
		_, err = svc.Generate(ctx, next, opts)
		return err
	}

	watcher, err = daemon.NewWatcher(cfg.WatchPaths(root.Config), regenerate,
		daemon.WithDebounce(w.Debounce), daemon.WithMetrics(metrics))
	if err != nil {
		return err
	}

	if w.MetricsAddr != "" {
		go func() {
			if err := daemon.ServeMetrics(ctx, w.MetricsAddr, metrics); err != nil {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
	}

	slog.Info("Watching for changes", logfields.Path(root.Config), slog.Any("files", watcher.Files()))
	if err := watcher.Run(ctx); err != nil {
		return err
	}
	slog.Info("Watcher stopped")
	return nil
}

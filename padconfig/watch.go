package padconfig

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for reload events. Default slog.Default().
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// Watch reloads the file at path every time it is written or replaced and
// sends each successfully loaded File on the returned channel. The current
// contents are not sent; call Load first. Files that fail to load are logged
// and skipped. The channel is closed when ctx is cancelled.
func Watch(ctx context.Context, path string, opts ...WatchOption) (<-chan *File, error) {
	cfg := watchConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are seen.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan *File, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		watchLoop(ctx, path, watcher, ch, cfg.logger)
	}()

	return ch, nil
}

func watchLoop(ctx context.Context, path string, watcher *fsnotify.Watcher, ch chan<- *File, logger *slog.Logger) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			f, err := Load(path)
			if err != nil {
				logger.Warn("config reload failed",
					slog.String("path", path),
					slog.Any("error", err))
				continue
			}
			logger.Debug("config reloaded", slog.String("path", path))

			select {
			case ch <- f:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error",
				slog.String("path", path),
				slog.Any("error", err))
		}
	}
}

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

// watchDebounce coalesces the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// watch emits a descriptor now and again after every configuration change
// until ctx is done. Failed rebuilds are logged and the previous output
// stands; each successful rebuild emits a complete, independent descriptor.
func (a *App) watch(ctx context.Context) error {
	ext := a.loader.Extension()
	files, err := fsutil.FindFilesByExtension([]string{a.config.ConfigPath}, ext)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start configuration watcher: %w", err)
	}
	defer watcher.Close()

	dirs := fsutil.Dirs(files)
	if info, err := os.Stat(a.config.ConfigPath); err == nil && info.IsDir() {
		dirs = append(dirs, a.config.ConfigPath)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	a.logger.Info("👀 Watching configuration.", "dirs", dirs)

	a.rebuild(ctx)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped.")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ext || ev.Op&reloadOps == 0 {
				continue
			}
			a.logger.Debug("Configuration changed.", "file", ev.Name, "op", ev.Op.String())
			debounce = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Configuration watcher failed.", "error", err)
		case <-debounce:
			debounce = nil
			a.rebuild(ctx)
		}
	}
}

func (a *App) rebuild(ctx context.Context) {
	if err := a.once(ctx); err != nil {
		a.logger.Error("Rebuild failed.", "error", err)
		return
	}
	a.logger.Info("🔁 Descriptor emitted.")
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// Watch calls onChange with the current token whenever the session file is
// written, replaced or removed. An empty token means signed out. It blocks
// until ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func(token string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: atomic renames replace the file's inode
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("ensure dir %s: %w", dir, err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			slog.Debug(LogMsgWatchEvent, "op", event.Op.String(), "path", event.Name)

			token, err := s.Token()
			if err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
				slog.Warn(LogMsgReloadFailed, "error", err)
				continue
			}
			onChange(token)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error(LogMsgWatchError, "error", err)
		}
	}
}

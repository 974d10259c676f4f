package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"zoo-dashboard/internal/platform/logger"
)

// DebounceWindow agrupa escrituras seguidas (los editores guardan en varios pasos).
const DebounceWindow = 200 * time.Millisecond

// Watch recarga path cuando cambia y llama onChange con la config nueva.
// Bloquea hasta que ctx termina. Un YAML inválido se loguea y se ignora.
//
// Se observa el directorio, no el archivo: los editores suelen reemplazar
// el archivo con rename y el watch sobre el inodo original se pierde.
func Watch(ctx context.Context, path string, log logger.Logger, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}

	timer := time.NewTimer(DebounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(DebounceWindow)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", map[string]any{"error": err})

		case <-timer.C:
			cfg, err := Load(abs)
			if err != nil {
				log.Warn("config reload failed", map[string]any{"path": abs, "error": err})
				continue
			}
			log.Info("config reloaded", map[string]any{"path": abs})
			onChange(cfg)
		}
	}
}

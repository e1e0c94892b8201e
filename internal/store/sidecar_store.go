// Package store persists sidecar records as one JSON document per clip.
// Writes are atomic: payloads land in a temp file that is renamed over the
// target, so a crash never leaves a half-written sidecar behind.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/models"
)

// ErrNotFound is returned when no sidecar exists for the requested ID.
var ErrNotFound = errors.New("sidecar not found")

const sidecarExt = ".sidecar.json"

// FileStore implements logic.ClipStore on a flat data directory.
type FileStore struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, logger: logger.Sugar()}, nil
}

func (fs *FileStore) path(id string) string {
	return filepath.Join(fs.dir, id+sidecarExt)
}

// Save writes the complete sidecar payload atomically and stamps
// modifiedAt.
func (fs *FileStore) Save(ctx context.Context, sc *models.Sidecar) error {
	if sc.ID == "" {
		return errors.New("sidecar has no id")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sc.ModifiedAt = time.Now().UTC()
	payload, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshal sidecar %s: %w", sc.ID, err)
	}

	tmp, err := os.CreateTemp(fs.dir, sc.ID+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", sc.ID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write sidecar %s: %w", sc.ID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync sidecar %s: %w", sc.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close sidecar %s: %w", sc.ID, err)
	}

	if err := os.Rename(tmpName, fs.path(sc.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace sidecar %s: %w", sc.ID, err)
	}

	fs.logger.Debugw("sidecar saved", "clip", sc.ID, "bytes", len(payload))
	return nil
}

func (fs *FileStore) Load(ctx context.Context, id string) (*models.Sidecar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read sidecar %s: %w", id, err)
	}

	var sc models.Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode sidecar %s: %w", id, err)
	}
	if sc.ID == "" {
		sc.ID = id
	}
	return &sc, nil
}

// List scans the data directory. Undecodable files are skipped with a
// warning; one corrupt sidecar must not hide the rest of the library.
func (fs *FileStore) List(ctx context.Context) ([]models.Sidecar, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}

	var clips []models.Sidecar
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, sidecarExt) {
			continue
		}
		id := strings.TrimSuffix(name, sidecarExt)
		sc, err := fs.Load(ctx, id)
		if err != nil {
			fs.logger.Warnw("skipping unreadable sidecar", "file", name, "error", err)
			continue
		}
		clips = append(clips, *sc)
	}
	return clips, nil
}

func (fs *FileStore) ListByAthlete(ctx context.Context, athlete string) ([]models.Sidecar, error) {
	clips, err := fs.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := clips[:0]
	for _, sc := range clips {
		if strings.EqualFold(sc.Athlete, athlete) {
			filtered = append(filtered, sc)
		}
	}
	return filtered, nil
}

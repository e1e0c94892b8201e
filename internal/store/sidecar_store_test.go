package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	sc := &models.Sidecar{
		ID:      "clip-1",
		Athlete: "Jo",
		Sport:   "wrestling",
		Style:   "freestyle",
		Events: []models.Event{
			{ID: "ev-1", T: 5, Key: "takedown", Actor: models.ActorHome, Points: 2},
		},
	}

	if err := fs.Save(ctx, sc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if sc.ModifiedAt.IsZero() {
		t.Error("Save did not stamp modifiedAt")
	}

	got, err := fs.Load(ctx, "clip-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Athlete != "Jo" || got.Sport != "wrestling" || len(got.Events) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Events[0].Key != "takedown" || got.Events[0].Points != 2 {
		t.Errorf("event mismatch: %+v", got.Events[0])
	}
}

func TestLoadNotFound(t *testing.T) {
	fs := newTestStore(t)
	if _, err := fs.Load(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	fs := newTestStore(t)
	sc := &models.Sidecar{ID: "clip-1", Athlete: "Jo", Sport: "wrestling"}
	if err := fs.Save(context.Background(), sc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
}

func TestSavePreservesUnknownFields(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	// A sidecar written by a newer app version with fields this build does
	// not know about.
	raw := `{"id":"clip-x","athlete":"Jo","sport":"wrestling","events":[],` +
		`"cloudSyncState":{"pending":true}}`
	if err := os.WriteFile(filepath.Join(fs.dir, "clip-x"+sidecarExt), []byte(raw), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sc, err := fs.Load(ctx, "clip-x")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := fs.Save(ctx, sc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(fs.dir, "clip-x"+sidecarExt))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var onDisk map[string]json.RawMessage
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(onDisk["cloudSyncState"]) != `{"pending":true}` {
		t.Errorf("unknown field lost: %s", onDisk["cloudSyncState"])
	}
}

func TestListByAthlete(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	for _, sc := range []*models.Sidecar{
		{ID: "a", Athlete: "Jo", Sport: "wrestling"},
		{ID: "b", Athlete: "jo", Sport: "volleyball"},
		{ID: "c", Athlete: "Sam", Sport: "wrestling"},
	} {
		if err := fs.Save(ctx, sc); err != nil {
			t.Fatalf("Save %s: %v", sc.ID, err)
		}
	}

	clips, err := fs.ListByAthlete(ctx, "Jo")
	if err != nil {
		t.Fatalf("ListByAthlete: %v", err)
	}
	if len(clips) != 2 {
		t.Errorf("clips = %d, want 2 (case-insensitive match)", len(clips))
	}

	all, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
}

func TestListSkipsCorruptSidecars(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()

	if err := fs.Save(ctx, &models.Sidecar{ID: "good", Athlete: "Jo", Sport: "wrestling"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(fs.dir, "bad"+sidecarExt), []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	clips, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(clips) != 1 || clips[0].ID != "good" {
		t.Errorf("clips = %+v, want just the good one", clips)
	}
}

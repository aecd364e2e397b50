package export

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/platform"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Kinds: []*model.Kind{{
			Title: "Olimpiada Fizyczna",
			Olympiads: []*model.Olympiad{{
				Name: "IPhO",
				Participants: []model.Participant{
					{Name: "Anna", School: "LO 1", Medal: model.MedalGold},
				},
			}},
		}},
	}
}

// waitForTask polls until the task leaves its active states
func waitForTask(t *testing.T, s Exporter, taskID string) *model.ExportTask {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		task, ok := s.GetTask(taskID)
		if ok && task.Status.IsFinished() {
			return task
		}
		select {
		case <-deadline:
			t.Fatal("export never finished")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStartExport_EmptySnapshot(t *testing.T) {
	service := NewService(t.TempDir(), "")

	_, err := service.StartExport(&model.Snapshot{}, t.TempDir())
	if err == nil {
		t.Error("Expected error for empty snapshot, got nil")
	}
}

func TestStartExport_BundleContents(t *testing.T) {
	assetsDir := t.TempDir()
	for _, name := range []string{"bg-ogolny.png", "zloto.png"} {
		if err := os.WriteFile(filepath.Join(assetsDir, name), []byte("img"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	backgrounds := filepath.Join(t.TempDir(), "backgrounds.toml")
	if err := os.WriteFile(backgrounds, []byte(`default = "animations/bg-ogolny.png"`), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService(assetsDir, backgrounds)
	task, err := service.StartExport(testSnapshot(), t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, task.ID)
	}

	task = waitForTask(t, service, task.ID)
	if task.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected Completed, got %s (%s)", task.Status, task.LastError)
	}
	if task.Percent != 100 {
		t.Errorf("Expected 100 percent, got %d", task.Percent)
	}

	zr, err := zip.OpenReader(task.OutputPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer zr.Close()

	entries := map[string]bool{}
	for _, f := range zr.File {
		entries[f.Name] = true
	}
	for _, want := range []string{
		platform.SnapshotFileName,
		"backgrounds.toml",
		"animations/bg-ogolny.png",
		"animations/zloto.png",
	} {
		if !entries[want] {
			t.Errorf("Archive is missing entry %q, has %v", want, entries)
		}
	}

	// The frozen snapshot must decode back to the exported data
	f, err := zr.Open(platform.SnapshotFileName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	snap, err := platform.ReadSnapshot(f)
	if err != nil {
		t.Fatalf("Snapshot does not decode: %v", err)
	}
	if len(snap.Kinds) != 1 || snap.Kinds[0].Title != "Olimpiada Fizyczna" {
		t.Errorf("Unexpected snapshot contents: %+v", snap)
	}
	if snap.SavedAt.IsZero() {
		t.Error("SavedAt must be stamped")
	}
}

func TestStartExport_MissingAssetsDir(t *testing.T) {
	service := NewService(filepath.Join(t.TempDir(), "nope"), "")
	task, err := service.StartExport(testSnapshot(), t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	task = waitForTask(t, service, task.ID)
	if task.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected data-only bundle, got %s (%s)", task.Status, task.LastError)
	}

	zr, err := zip.OpenReader(task.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != platform.SnapshotFileName {
		t.Errorf("Expected only the snapshot entry, got %d entries", len(zr.File))
	}
}

func TestStartExport_RejectsConcurrentExport(t *testing.T) {
	service := NewService(t.TempDir(), "").(*Service)

	// Pin an active task so the second start must be rejected
	service.tasks["busy"] = &model.ExportTask{ID: "busy", Status: model.TaskStatusRunning}

	_, err := service.StartExport(testSnapshot(), t.TempDir())
	if err == nil {
		t.Error("Expected 'already in progress' error, got nil")
	}
	if !strings.Contains(err.Error(), "already in progress") {
		t.Errorf("Expected 'already in progress' error, got: %v", err)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(t.TempDir(), "")

	var updates []model.TaskStatus
	done := make(chan struct{})
	service.SetUpdateCallback(func(task *model.ExportTask) {
		updates = append(updates, task.Status)
		if task.Status.IsFinished() {
			close(done)
		}
	})

	if _, err := service.StartExport(testSnapshot(), t.TempDir()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never reported a finished task")
	}

	if updates[0] != model.TaskStatusRunning {
		t.Errorf("Expected first update to be Running, got %s", updates[0])
	}
	if updates[len(updates)-1] != model.TaskStatusCompleted {
		t.Errorf("Expected last update to be Completed, got %s", updates[len(updates)-1])
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}

func TestBundleName(t *testing.T) {
	now := time.Date(2026, 5, 17, 18, 30, 0, 0, time.UTC)
	if got := bundleName(now); got != "gala-offline-20260517-183000.zip" {
		t.Errorf("unexpected bundle name: %s", got)
	}
}

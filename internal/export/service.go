package export

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/platform"
)

// Bundle layout constants
const (
	// BundlePrefix starts every produced archive name
	BundlePrefix = "gala-offline-"

	// BundleTimeFormat stamps the archive name
	BundleTimeFormat = "20060102-150405"

	// ZipExtension is the archive file extension
	ZipExtension = ".zip"

	// AssetsDirName is the asset directory name inside the bundle
	AssetsDirName = "animations"

	// BackgroundsFileName is the optional override carried into the bundle
	BackgroundsFileName = "backgrounds.toml"

	// TaskIDPrefix starts every export task ID
	TaskIDPrefix = "export-"
)

// Service handles offline bundle export operations
type Service struct {
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates

	assetsDir       string // source directory of background and marker assets
	backgroundsPath string // optional backgrounds override file, may not exist
}

// NewService creates a new export service
func NewService(assetsDir, backgroundsPath string) Exporter {
	return &Service{
		tasks:           make(map[string]*model.ExportTask),
		assetsDir:       assetsDir,
		backgroundsPath: backgroundsPath,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// StartExport starts building an offline bundle in the background. Only
// one export may run at a time, and an empty snapshot is rejected up front
// so a bundle can never be produced without data.
func (s *Service) StartExport(snap *model.Snapshot, outputDir string) (*model.ExportTask, error) {
	if snap.IsEmpty() {
		return nil, fmt.Errorf("nothing to export, snapshot is empty")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.Status.IsActive() || task.Status == model.TaskStatusPending {
			return nil, fmt.Errorf("export already in progress: %s", task.ID)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	task := &model.ExportTask{
		ID:         generateTaskID(),
		OutputPath: filepath.Join(outputDir, bundleName(time.Now())),
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task

	// Build the bundle in background
	go s.runExport(task, snap)

	return task, nil
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// runExport performs the actual bundle build
func (s *Service) runExport(task *model.ExportTask, snap *model.Snapshot) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	if err := s.buildBundle(task, snap); err != nil {
		log.Printf("Export %s failed: %v", task.ID, err)
		os.Remove(task.OutputPath)
		s.setTaskError(task, err)
		return
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// buildBundle writes the zip archive: the frozen snapshot first, then the
// optional backgrounds override, then every asset file
func (s *Service) buildBundle(task *model.ExportTask, snap *model.Snapshot) error {
	assets, err := s.collectAssets()
	if err != nil {
		return err
	}

	out, err := os.Create(task.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	total := len(assets) + 1
	done := 0

	w, err := zw.Create(platform.SnapshotFileName)
	if err != nil {
		return fmt.Errorf("failed to create snapshot entry: %w", err)
	}
	if err := platform.WriteSnapshot(w, snap); err != nil {
		return err
	}
	done++
	s.setProgress(task, done, total)

	if _, err := os.Stat(s.backgroundsPath); err == nil {
		if err := s.addFile(zw, s.backgroundsPath, BackgroundsFileName); err != nil {
			return err
		}
	}

	for _, asset := range assets {
		entry := filepath.ToSlash(filepath.Join(AssetsDirName, filepath.Base(asset)))
		if err := s.addFile(zw, asset, entry); err != nil {
			return err
		}
		done++
		s.setProgress(task, done, total)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// collectAssets lists the regular files in the assets directory. A missing
// directory yields an empty list, the bundle then carries only the data.
func (s *Service) collectAssets() ([]string, error) {
	entries, err := os.ReadDir(s.assetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Assets directory %s not found, exporting data only", s.assetsDir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read assets directory: %w", err)
	}

	var assets []string
	for _, entry := range entries {
		if entry.Type().IsRegular() || entry.Type()&fs.ModeSymlink != 0 {
			assets = append(assets, filepath.Join(s.assetsDir, entry.Name()))
		}
	}
	return assets, nil
}

// addFile copies one file into the archive under the given entry name
func (s *Service) addFile(zw *zip.Writer, path, entry string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	w, err := zw.Create(entry)
	if err != nil {
		return fmt.Errorf("failed to create entry %s: %w", entry, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", entry, err)
	}
	return nil
}

// setProgress updates task progress and notifies
func (s *Service) setProgress(task *model.ExportTask, done, total int) {
	s.tasksMutex.Lock()
	task.Progress = float64(done) / float64(total)
	task.Percent = int(task.Progress * 100)
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// bundleName stamps the archive name with the export time
func bundleName(now time.Time) string {
	return BundlePrefix + now.Format(BundleTimeFormat) + ZipExtension
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

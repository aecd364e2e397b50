package export

import (
	"github.com/galaview/gala-presenter/internal/model"
)

// Exporter defines the interface for the offline bundle export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(snap *model.Snapshot, outputDir string) (*model.ExportTask, error)
	GetTask(taskID string) (*model.ExportTask, bool)
}

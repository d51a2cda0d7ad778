package usecase

import (
	"context"
	"fmt"

	"github.com/mlevasseur/faitout/internal/domain"
)

// ExportPageInput identifies the page to export by position.
type ExportPageInput struct {
	Entries []domain.Note
	Index   int
}

// ExportPageOutput contains the path the page was written to.
type ExportPageOutput struct {
	Path string
}

// ExportPage is the use case for writing a page out as a standalone
// markdown file.
type ExportPage struct {
	exporter domain.PageExporter
	logger   domain.Logger
}

// NewExportPage creates a new ExportPage use case.
func NewExportPage(exporter domain.PageExporter, logger domain.Logger) *ExportPage {
	return &ExportPage{
		exporter: exporter,
		logger:   logger,
	}
}

// Execute exports the page at the given index.
func (uc *ExportPage) Execute(_ context.Context, in ExportPageInput) (*ExportPageOutput, error) {
	if in.Index < 0 || in.Index >= len(in.Entries) {
		return nil, domain.ErrNoteNotFound
	}
	note := in.Entries[in.Index]

	path, err := uc.exporter.Export(note)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("export", fmt.Sprintf("export failed: %v", err))
		}
		return nil, fmt.Errorf("export page: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("exported %q to %s", note.DisplayTitle(), path))
	}
	return &ExportPageOutput{Path: path}, nil
}

// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/mlevasseur/faitout/internal/domain"
)

// LoadNotebookInput contains the parameters for loading the notebook.
type LoadNotebookInput struct{}

// LoadNotebookOutput contains the loaded notebook.
type LoadNotebookOutput struct {
	Notebook *domain.Notebook
}

// LoadNotebook is the use case for loading the note collection at startup.
type LoadNotebook struct {
	notes  domain.NoteRepository
	logger domain.Logger
}

// NewLoadNotebook creates a new LoadNotebook use case.
func NewLoadNotebook(notes domain.NoteRepository, logger domain.Logger) *LoadNotebook {
	return &LoadNotebook{
		notes:  notes,
		logger: logger,
	}
}

// Execute loads the persisted notes. An unreadable or corrupt file is not
// fatal: the notebook starts empty and the failure is logged.
func (uc *LoadNotebook) Execute(_ context.Context, _ LoadNotebookInput) (*LoadNotebookOutput, error) {
	entries, err := uc.notes.Load()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("notebook", fmt.Sprintf("load failed, starting empty: %v", err))
		}
		return &LoadNotebookOutput{Notebook: domain.NewNotebook(nil)}, nil
	}

	return &LoadNotebookOutput{Notebook: domain.NewNotebook(entries)}, nil
}

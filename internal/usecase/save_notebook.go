package usecase

import (
	"context"
	"fmt"

	"github.com/mlevasseur/faitout/internal/domain"
)

// SaveNotebookInput contains the entries to persist.
type SaveNotebookInput struct {
	Entries []domain.Note
}

// SaveNotebookOutput contains the result of saving the notebook.
type SaveNotebookOutput struct{}

// SaveNotebook is the use case for persisting the note collection after
// a mutation.
type SaveNotebook struct {
	notes  domain.NoteRepository
	logger domain.Logger
}

// NewSaveNotebook creates a new SaveNotebook use case.
func NewSaveNotebook(notes domain.NoteRepository, logger domain.Logger) *SaveNotebook {
	return &SaveNotebook{
		notes:  notes,
		logger: logger,
	}
}

// Execute writes the entries. The failure is logged and returned; the
// caller decides whether to keep going with the in-memory state.
func (uc *SaveNotebook) Execute(_ context.Context, in SaveNotebookInput) (*SaveNotebookOutput, error) {
	if err := uc.notes.Save(in.Entries); err != nil {
		if uc.logger != nil {
			uc.logger.Error("notebook", fmt.Sprintf("save failed: %v", err))
		}
		return nil, fmt.Errorf("save notebook: %w", err)
	}

	return &SaveNotebookOutput{}, nil
}

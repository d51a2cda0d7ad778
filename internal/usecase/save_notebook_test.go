package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/testutil"
)

func TestSaveNotebook_Execute_Success(t *testing.T) {
	repo := testutil.NewMockNoteRepository()
	uc := NewSaveNotebook(repo, &testutil.MockLogger{})

	entries := []domain.Note{domain.NewNote("keep me", "content", nil)}
	out, err := uc.Execute(context.Background(), SaveNotebookInput{Entries: entries})

	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, repo.Saved, 1)
	assert.Equal(t, "keep me", repo.Saved[0][0].Title)
}

func TestSaveNotebook_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockNoteRepository()
	repo.SaveErr = assert.AnError
	logger := &testutil.MockLogger{}
	uc := NewSaveNotebook(repo, logger)

	_, err := uc.Execute(context.Background(), SaveNotebookInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save notebook")
	require.Len(t, logger.Errors, 1)
	assert.Contains(t, logger.Errors[0], "save failed")
}

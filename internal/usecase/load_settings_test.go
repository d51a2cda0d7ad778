package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/testutil"
)

func TestLoadSettings_Execute_Success(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	repo.Settings = domain.Settings{
		SelectedTheme: domain.ThemeNord,
		SelectedFont:  domain.FontSerif,
		FontSize:      20,
	}
	uc := NewLoadSettings(repo, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), LoadSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeNord, out.Settings.SelectedTheme)
	assert.Equal(t, domain.FontSerif, out.Settings.SelectedFont)
	assert.Equal(t, 20, out.Settings.FontSize)
}

func TestLoadSettings_Execute_LoadErrorUsesDefaults(t *testing.T) {
	repo := testutil.NewMockSettingsRepository()
	repo.LoadErr = assert.AnError
	logger := &testutil.MockLogger{}
	uc := NewLoadSettings(repo, logger)

	out, err := uc.Execute(context.Background(), LoadSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), out.Settings)
	require.Len(t, logger.Warns, 1)
	assert.Contains(t, logger.Warns[0], "using defaults")
}

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/faitout/internal/domain"
)

func TestExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exporter := New(filepath.Join(dir, "exports"))

	note := domain.Note{
		Title: "Trip Planning",
		Body:  "# Itinerary\n\n- pack bags",
		Tags:  []string{"travel", "summer"},
		Color: domain.ColorOcean,
	}

	path, err := exporter.Export(note)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports", "trip-planning.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "---\n"), "missing front matter opener:\n%s", text)
	assert.Contains(t, text, "title: Trip Planning")
	assert.Contains(t, text, "- travel")
	assert.Contains(t, text, "- summer")
	assert.Contains(t, text, "color: Ocean")
	assert.Contains(t, text, "---\n\n# Itinerary")
	assert.True(t, strings.HasSuffix(text, "- pack bags\n"))
}

func TestExporter_ExportUntitled(t *testing.T) {
	dir := t.TempDir()
	exporter := New(dir)

	path, err := exporter.Export(domain.NewNote("", "body only", nil))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "untitled-page.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "title: Untitled page")
}

func TestExporter_ExportEmptyTags(t *testing.T) {
	dir := t.TempDir()
	exporter := New(dir)

	path, err := exporter.Export(domain.NewNote("solo", "", nil))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tags: []")
}

func TestExporter_ExportOverwritesSameTitle(t *testing.T) {
	dir := t.TempDir()
	exporter := New(dir)

	_, err := exporter.Export(domain.NewNote("draft", "first version", nil))
	require.NoError(t, err)
	path, err := exporter.Export(domain.NewNote("draft", "second version", nil))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "second version")
	assert.NotContains(t, string(content), "first version")
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Trip Planning", "trip-planning"},
		{"Hello, World!", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
		{"MixedCASE123", "mixedcase123"},
		{"---", "page"},
		{"Untitled page", "untitled-page"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}

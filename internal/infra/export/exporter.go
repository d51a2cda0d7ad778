// Package export writes pages out as standalone markdown files with
// YAML front matter.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mlevasseur/faitout/internal/domain"
)

// Ensure Exporter implements domain.PageExporter.
var _ domain.PageExporter = (*Exporter)(nil)

// Exporter writes markdown files into a fixed directory. The file name is
// derived from the page title; exporting the same title twice overwrites
// the earlier file.
type Exporter struct {
	dir string
}

// New creates an Exporter writing into dir.
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// frontMatter is the metadata block at the top of an exported file.
type frontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
	Color string   `yaml:"color"`
}

// Export writes the note as <dir>/<slug>.md and returns the path.
func (e *Exporter) Export(note domain.Note) (string, error) {
	meta := frontMatter{
		Title: note.DisplayTitle(),
		Tags:  note.Tags,
		Color: string(note.Color),
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	head, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")
	b.WriteString(note.Body)
	if !strings.HasSuffix(note.Body, "\n") {
		b.WriteString("\n")
	}

	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return "", fmt.Errorf("create exports directory: %w", err)
	}

	path := filepath.Join(e.dir, slugify(note.DisplayTitle())+".md")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

// slugify turns a title into a file name stem. Runs of characters other
// than letters and digits collapse into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // Suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "page"
	}
	return slug
}

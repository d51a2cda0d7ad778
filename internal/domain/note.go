// Package domain contains core business entities and interfaces.
package domain

import "strings"

// NoteColor is the color label attached to a note.
type NoteColor string

const (
	ColorDefault NoteColor = "Default" // No swatch, neutral card
	ColorCherry  NoteColor = "Cherry"
	ColorEmerald NoteColor = "Emerald"
	ColorOcean   NoteColor = "Ocean"
	ColorAmber   NoteColor = "Amber"
	ColorViolet  NoteColor = "Violet"
)

// AllNoteColors returns the selectable colors in display order.
func AllNoteColors() []NoteColor {
	return []NoteColor{
		ColorDefault,
		ColorCherry,
		ColorEmerald,
		ColorOcean,
		ColorAmber,
		ColorViolet,
	}
}

// Valid returns true if the color is one of the known names.
func (c NoteColor) Valid() bool {
	switch c {
	case ColorDefault, ColorCherry, ColorEmerald, ColorOcean, ColorAmber, ColorViolet:
		return true
	}
	return false
}

// Swatch returns the hex color for the swatch. ColorDefault has no swatch
// of its own; callers pick their own neutral fallback.
func (c NoteColor) Swatch() (string, bool) {
	switch c {
	case ColorCherry:
		return "#f56a6a", true
	case ColorEmerald:
		return "#5bc07a", true
	case ColorOcean:
		return "#4a90e2", true
	case ColorAmber:
		return "#f1c40f", true
	case ColorViolet:
		return "#b479e6", true
	default:
		return "", false
	}
}

// Note represents a single markdown page in the notebook.
type Note struct {
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Tags  []string  `json:"tags"`
	Color NoteColor `json:"color"`
}

// NewNote builds a note with the default color. It does not insert the
// note anywhere.
func NewNote(title, body string, tags []string) Note {
	if tags == nil {
		tags = []string{}
	}
	return Note{
		Title: title,
		Body:  body,
		Tags:  tags,
		Color: ColorDefault,
	}
}

// ParseTags splits a comma-separated input into trimmed, non-empty tags.
func ParseTags(input string) []string {
	tags := []string{}
	for _, tag := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// DisplayTitle returns the title, or a placeholder when it is blank.
func (n *Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled page"
	}
	return n.Title
}

// Matches reports whether the note's title contains the query,
// case-insensitively. An empty query matches every note.
func (n *Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), strings.ToLower(query))
}

// Normalize repairs fields after deserialization: unknown colors degrade
// to the default and a missing tags array becomes empty.
func (n *Note) Normalize() {
	if !n.Color.Valid() {
		n.Color = ColorDefault
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
}

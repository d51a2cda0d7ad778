package domain

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple list", "work, ideas, go", []string{"work", "ideas", "go"}},
		{"extra whitespace", "  work ,  ideas  ", []string{"work", "ideas"}},
		{"empty segments dropped", "work,,ideas,", []string{"work", "ideas"}},
		{"only separators", " , , ", []string{}},
		{"empty input", "", []string{}},
		{"single tag", "journal", []string{"journal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNote_Matches(t *testing.T) {
	note := NewNote("Project Plan", "", nil)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"substring", "proj", true},
		{"case-insensitive query", "PROJ", true},
		{"middle of title", "ject", true},
		{"no match", "grocery", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := note.Matches(tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNote_DisplayTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Meeting notes", "Meeting notes"},
		{"", "Untitled page"},
		{"   ", "Untitled page"},
	}

	for _, tt := range tests {
		note := NewNote(tt.title, "", nil)
		if got := note.DisplayTitle(); got != tt.want {
			t.Errorf("DisplayTitle() for %q = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestNoteColor_Swatch(t *testing.T) {
	tests := []struct {
		color NoteColor
		hex   string
		ok    bool
	}{
		{ColorDefault, "", false},
		{ColorCherry, "#f56a6a", true},
		{ColorEmerald, "#5bc07a", true},
		{ColorOcean, "#4a90e2", true},
		{ColorAmber, "#f1c40f", true},
		{ColorViolet, "#b479e6", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			hex, ok := tt.color.Swatch()
			if hex != tt.hex || ok != tt.ok {
				t.Errorf("Swatch() = (%q, %v), want (%q, %v)", hex, ok, tt.hex, tt.ok)
			}
		})
	}
}

func TestNoteColor_Valid(t *testing.T) {
	for _, color := range AllNoteColors() {
		if !color.Valid() {
			t.Errorf("%s should be valid", color)
		}
	}
	if NoteColor("Chartreuse").Valid() {
		t.Error("unknown color should not be valid")
	}
}

func TestAllNoteColors_Order(t *testing.T) {
	want := []NoteColor{ColorDefault, ColorCherry, ColorEmerald, ColorOcean, ColorAmber, ColorViolet}
	if !reflect.DeepEqual(AllNoteColors(), want) {
		t.Errorf("AllNoteColors() = %v, want %v", AllNoteColors(), want)
	}
}

func TestNote_Normalize(t *testing.T) {
	note := Note{Title: "t", Color: NoteColor("Chartreuse")}
	note.Normalize()
	if note.Color != ColorDefault {
		t.Errorf("unknown color should normalize to %s, got %s", ColorDefault, note.Color)
	}
	if note.Tags == nil {
		t.Error("nil tags should normalize to an empty slice")
	}
}

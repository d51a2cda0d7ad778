package domain

import "time"

// DoubleClickWindow is the maximum delay between two clicks on the same
// entry for the pair to count as a double-click.
const DoubleClickWindow = 300 * time.Millisecond

// noIndex marks an absent optional index.
const noIndex = -1

// Notebook owns the ordered note collection, the selection, and the
// ephemeral interaction state (search query, open color menu, last-click
// record). Indices are positional: they address the unfiltered collection
// and are not stable across deletions, so every mutation that removes an
// entry adjusts the index holders it owns in the same call. Holders living
// outside the notebook (the editor's editing reference, an open page view)
// must be adjusted by the caller in the same event-handling pass.
//
// The notebook performs no I/O. Callers persist the entries after each
// call documented as requiring persistence.
type Notebook struct {
	entries     []Note
	search      string
	selected    int
	colorMenu   int
	lastClickAt time.Time
	lastClickOn int
}

// NewNotebook wraps an already-loaded entry slice.
func NewNotebook(entries []Note) *Notebook {
	if entries == nil {
		entries = []Note{}
	}
	return &Notebook{
		entries:     entries,
		selected:    noIndex,
		colorMenu:   noIndex,
		lastClickOn: noIndex,
	}
}

// Len returns the number of entries.
func (n *Notebook) Len() int {
	return len(n.entries)
}

// Get returns a copy of the entry at index.
func (n *Notebook) Get(index int) (Note, bool) {
	if index < 0 || index >= len(n.entries) {
		return Note{}, false
	}
	return n.entries[index], true
}

// Entries returns the underlying entry slice for persistence and display.
// Treat it as read-only.
func (n *Notebook) Entries() []Note {
	return n.entries
}

// Selected returns the selected index, if any.
func (n *Notebook) Selected() (int, bool) {
	if n.selected == noIndex {
		return 0, false
	}
	return n.selected, true
}

// Select sets the selection to index if it refers to a valid entry and
// clears it otherwise. Selection is ephemeral: no persistence.
func (n *Notebook) Select(index int) {
	if index < 0 || index >= len(n.entries) {
		n.selected = noIndex
		return
	}
	n.selected = index
}

// ClearSelection drops the selection.
func (n *Notebook) ClearSelection() {
	n.selected = noIndex
}

// Upsert stores note and returns its final index. A valid editing index
// replaces that entry in place, preserving the entry's current color
// (color is not part of the editable form). A stale editing index or a
// negative one appends instead. Callers persist after every call.
func (n *Notebook) Upsert(note Note, editing int) int {
	if editing >= 0 && editing < len(n.entries) {
		note.Color = n.entries[editing].Color
		n.entries[editing] = note
		return editing
	}
	n.entries = append(n.entries, note)
	return len(n.entries) - 1
}

// Delete removes the entry at index and shifts the notebook's own index
// holders: an index equal to the removed one is cleared, a greater one is
// decremented. The last-click record is dropped so a click straddling the
// deletion cannot register as a double-click. Returns false without any
// change when index is out of range. Callers persist after a true return.
func (n *Notebook) Delete(index int) bool {
	if index < 0 || index >= len(n.entries) {
		return false
	}
	n.entries = append(n.entries[:index], n.entries[index+1:]...)
	n.adjustAfterRemove(index)
	n.lastClickOn = noIndex
	return true
}

func (n *Notebook) adjustAfterRemove(index int) {
	switch {
	case n.selected == index:
		n.selected = noIndex
	case n.selected > index:
		n.selected--
	}

	switch {
	case n.colorMenu == index:
		n.colorMenu = noIndex
	case n.colorMenu > index:
		n.colorMenu--
	}
}

// SetColor recolors the entry at index and closes the color menu. Returns
// false without any change when index is out of range. Callers persist
// after a true return.
func (n *Notebook) SetColor(index int, color NoteColor) bool {
	if index < 0 || index >= len(n.entries) {
		return false
	}
	n.entries[index].Color = color
	n.colorMenu = noIndex
	return true
}

// ColorMenu returns the index whose color menu is open, if any.
func (n *Notebook) ColorMenu() (int, bool) {
	if n.colorMenu == noIndex {
		return 0, false
	}
	return n.colorMenu, true
}

// ToggleColorMenu opens the color menu for index, or closes it when it is
// already open there.
func (n *Notebook) ToggleColorMenu(index int) {
	if n.colorMenu == index {
		n.colorMenu = noIndex
		return
	}
	if index >= 0 && index < len(n.entries) {
		n.colorMenu = index
	}
}

// Click records a click on the entry at index at the given time and
// reports whether it completes a double-click: the previous recorded
// click was on the same entry no more than DoubleClickWindow ago. Every
// click moves the selection to index and closes the color menu. On a
// double-click the click memory resets, so a third rapid click starts a
// fresh cycle instead of chaining; otherwise the click is remembered for
// the next call. Clicks on out-of-range indices are ignored.
func (n *Notebook) Click(index int, now time.Time) bool {
	if index < 0 || index >= len(n.entries) {
		return false
	}

	double := n.lastClickOn == index && now.Sub(n.lastClickAt) <= DoubleClickWindow

	n.selected = index
	n.colorMenu = noIndex

	if double {
		n.lastClickOn = noIndex
		return true
	}
	n.lastClickOn = index
	n.lastClickAt = now
	return false
}

// ResetInteraction closes the color menu and forgets the last click.
// Used when leaving the notebook screen (new page, search edits).
func (n *Notebook) ResetInteraction() {
	n.colorMenu = noIndex
	n.lastClickOn = noIndex
}

// Search returns the current search query.
func (n *Notebook) Search() string {
	return n.search
}

// SetSearch updates the query and resets the interaction state. The query
// only affects the visible set; stored entries and indices are untouched.
func (n *Notebook) SetSearch(query string) {
	n.search = query
	n.ResetInteraction()
}

// VisibleIndices returns the absolute indices of entries whose titles
// match the current query, in display order.
func (n *Notebook) VisibleIndices() []int {
	indices := make([]int, 0, len(n.entries))
	for i := range n.entries {
		if n.entries[i].Matches(n.search) {
			indices = append(indices, i)
		}
	}
	return indices
}

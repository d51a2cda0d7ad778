package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStatus is sent to show a transient message in the status line.
type MsgStatus struct {
	Text    string
	IsError bool
}

func (MsgStatus) sealed() {}

// MsgClearStatus is sent to clear the status line. Seq must match the
// sequence number of the status it was scheduled for; stale clears are
// ignored so a newer status is not wiped early.
type MsgClearStatus struct {
	Seq int
}

func (MsgClearStatus) sealed() {}

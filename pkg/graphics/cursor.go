package graphics

import "fmt"

// MouseCursor identifies the pointer shape a control requests while the
// pointer is over it. The host windowing layer maps these to native cursors.
type MouseCursor int

const (
	// CursorBasic is the platform's default arrow cursor.
	CursorBasic MouseCursor = iota
	// CursorClick indicates an actionable target (pointing hand).
	CursorClick
	// CursorText indicates editable or selectable text (I-beam).
	CursorText
	// CursorForbidden indicates an unavailable action.
	CursorForbidden
	// CursorWait indicates a blocking operation in progress.
	CursorWait
)

// String returns a human-readable representation of the cursor.
func (c MouseCursor) String() string {
	switch c {
	case CursorBasic:
		return "basic"
	case CursorClick:
		return "click"
	case CursorText:
		return "text"
	case CursorForbidden:
		return "forbidden"
	case CursorWait:
		return "wait"
	default:
		return fmt.Sprintf("MouseCursor(%d)", int(c))
	}
}

package term

import "fmt"

const (
	esc = "\x1b"
	csi = esc + "["

	// Reset clears all SGR attributes.
	Reset = csi + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", csi, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return csi + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return csi + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return csi + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return csi + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return csi + "?1049l"
}

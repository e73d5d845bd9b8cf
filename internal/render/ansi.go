package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// CellWidth is how many screen columns each map cell occupies.
	// 2 makes cells appear roughly square since terminal chars are ~2:1.
	CellWidth = 2
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// writeCellSGR writes one cell as a combined SGR sequence plus text, to
// avoid color state leaking between cells.
func writeCellSGR(sb *strings.Builder, text string, fr, fg, fb, br, bg, bb uint8) {
	sb.WriteString("\x1b[0;38;2;")
	sb.WriteString(strconv.Itoa(int(fr)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fb)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(br)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bb)))
	sb.WriteByte('m')
	sb.WriteString(text)
}

// AnsiToRGB converts a basic ANSI color code to RGB.
func AnsiToRGB(code int) (uint8, uint8, uint8) {
	switch code {
	case 30:
		return 0, 0, 0
	case 31:
		return 170, 0, 0
	case 32:
		return 0, 170, 0
	case 33:
		return 170, 170, 0
	case 34:
		return 0, 0, 170
	case 35:
		return 170, 0, 170
	case 36:
		return 0, 170, 170
	case 37:
		return 170, 170, 170
	case 90:
		return 85, 85, 85
	case 91:
		return 255, 85, 85
	case 92:
		return 85, 255, 85
	case 93:
		return 255, 255, 85
	case 94:
		return 85, 85, 255
	case 95:
		return 255, 85, 255
	case 96:
		return 85, 255, 255
	case 97:
		return 255, 255, 255
	default:
		return 170, 170, 170
	}
}

package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const ansiClearScreen = "\033[H\033[2J"

// TerminalRenderer writes boards as plain text, one row per line
type TerminalRenderer struct {
	// ClearScreen makes Clear emit the ANSI clear sequence; otherwise it is a no-op
	ClearScreen bool
}

// Display renders the board to w
func (r *TerminalRenderer) Display(w io.Writer, b *Board) error {
	for _, row := range b.Board() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "")); err != nil {
			return errors.Wrap(err, "[Display] failed to write row")
		}
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	if !r.ClearScreen {
		return nil
	}
	if _, err := io.WriteString(w, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

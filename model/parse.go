package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseRows splits row text on whitespace. Every non-whitespace run is one row.
func ParseRows(text ...string) []string {
	var rows []string
	for _, t := range text {
		rows = append(rows, strings.Fields(t)...)
	}
	return rows
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!")
}

// ReadRows reads board text from r, skipping blank lines and lines starting with # or !
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}
		rows = append(rows, ParseRows(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadRows] failed to scan board text")
	}
	return rows, nil
}

// LoadBoard reads a board from a plain text file
func LoadBoard(filename string) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", filename)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to read file: %+v", filename)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptyBoard, "[LoadBoard] no rows in file: %+v", filename)
	}

	b, err := NewBoard(rows...)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] malformed board in file: %+v", filename)
	}
	return b, nil
}

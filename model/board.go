package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	defaultRows    = 4
	defaultColumns = 8
)

var (
	ErrEmptyBoard  = errors.New("board has no rows")
	ErrRaggedRows  = errors.New("board rows differ in length")
	ErrInvalidCell = errors.New("board contains an invalid cell")
	ErrOutOfBounds = errors.New("coordinate is outside the board")
)

// neighbourOffsets lists the 3x3 neighbourhood in reading order, centre excluded
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a fixed size Game of Life grid.
//
// A Board is not safe for concurrent use: callers must serialize NextGeneration
// against every other call.
type Board struct {
	rows    int
	columns int
	cells   [][]Cell
}

/*
NewBoard builds a board from row text. Each argument is split on whitespace and
every non-whitespace run is one row, so both []string{"..*", ".*."} and
"..*\n.*." describe the same board. Input without any row is rejected with
ErrEmptyBoard.
*/
func NewBoard(rows ...string) (*Board, error) {
	lines := ParseRows(rows...)
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrEmptyBoard, "[NewBoard] no rows in input")
	}

	columns := len(lines[0])
	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		if len(line) != columns {
			return nil, errors.Wrapf(ErrRaggedRows, "[NewBoard] row %d has %d cells, want %d", y, len(line), columns)
		}
		cells[y] = make([]Cell, columns)
		for x, r := range line {
			cell, ok := parseCell(r)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidCell, "[NewBoard] %q at row %d column %d", r, y, x)
			}
			cells[y][x] = cell
		}
	}

	return &Board{
		rows:    len(lines),
		columns: columns,
		cells:   cells,
	}, nil
}

// MustNewBoard is like NewBoard but panics on malformed input
func MustNewBoard(rows ...string) *Board {
	b, err := NewBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// NewDefaultBoard returns a 4x8 board with every cell dead
func NewDefaultBoard() *Board {
	return &Board{
		rows:    defaultRows,
		columns: defaultColumns,
		cells:   newCells(defaultRows, defaultColumns, Dead),
	}
}

// NewEmptyBoard creates a board of the given size with every cell dead
func NewEmptyBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrEmptyBoard, "[NewEmptyBoard] invalid size %dx%d", rows, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   newCells(rows, columns, Dead),
	}, nil
}

func newCells(rows, columns int, fill Cell) [][]Cell {
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, columns)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return cells
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.columns
}

// Board returns a copy of the current grid, one string per cell
func (b *Board) Board() [][]string {
	out := make([][]string, b.rows)
	for y, row := range b.cells {
		out[y] = make([]string, b.columns)
		for x, cell := range row {
			out[y][x] = cell.String()
		}
	}
	return out
}

func (b *Board) contains(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

func (b *Board) checkBounds(op string, row, column int) error {
	if !b.contains(row, column) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) on a %dx%d board", op, row, column, b.rows, b.columns)
	}
	return nil
}

// neighbours returns the in-grid neighbours of (row, column) in reading order
func (b *Board) neighbours(row, column int) []Cell {
	out := make([]Cell, 0, len(neighbourOffsets))
	for _, off := range neighbourOffsets {
		ny, nx := row+off[0], column+off[1]
		if b.contains(ny, nx) {
			out = append(out, b.cells[ny][nx])
		}
	}
	return out
}

/*
NeighboursFor returns the states of the cells around (row, column).

Cells outside the grid are left out rather than counted as dead, so a corner
has 3 neighbours, an edge cell 5 and an interior cell 8.
*/
func (b *Board) NeighboursFor(row, column int) ([]string, error) {
	if err := b.checkBounds("NeighboursFor", row, column); err != nil {
		return nil, err
	}
	cells := b.neighbours(row, column)
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = cell.String()
	}
	return out, nil
}

func (b *Board) liveNeighbours(row, column int) (count int) {
	for _, cell := range b.neighbours(row, column) {
		if cell.IsAlive() {
			count++
		}
	}
	return
}

func (b *Board) nextCell(row, column int) Cell {
	alive := b.cells[row][column].IsAlive()
	return cellFromBool(rules.NextState(alive, b.liveNeighbours(row, column)))
}

// NextGenerationFor returns the state (row, column) will have in the next generation
// without changing the board
func (b *Board) NextGenerationFor(row, column int) (string, error) {
	if err := b.checkBounds("NextGenerationFor", row, column); err != nil {
		return "", err
	}
	return b.nextCell(row, column).String(), nil
}

// NextGeneration advances the whole board by one generation.
// Every cell is computed from the current grid before the grid is replaced.
func (b *Board) NextGeneration() {
	next := make([][]Cell, b.rows)
	for y := range b.rows {
		next[y] = make([]Cell, b.columns)
		for x := range b.columns {
			next[y][x] = b.nextCell(y, x)
		}
	}
	b.cells = next
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for y := range b.rows {
		for x := range b.columns {
			if b.cells[y][x].IsAlive() {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same size and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.columns != other.columns {
		return false
	}
	for y := range b.rows {
		if string(b.cells[y]) != string(other.cells[y]) {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the current grid
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.rows, b.columns)
	for _, row := range b.cells {
		h.Write([]byte(string(row)))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

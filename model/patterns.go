package model

import (
	"math/rand"
	"strings"
)

// Seed patterns only produce row text; boards are always built through NewBoard.

func deadRows(rows, columns int) [][]byte {
	grid := make([][]byte, rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(Dead.String(), columns))
	}
	return grid
}

func joinRows(grid [][]byte) []string {
	out := make([]string, len(grid))
	for y, row := range grid {
		out[y] = string(row)
	}
	return out
}

// stamp copies pattern into grid at (top, left), dropping cells that fall outside
func stamp(grid [][]byte, top, left int, pattern []string) {
	for dy, line := range pattern {
		y := top + dy
		if y < 0 || y >= len(grid) {
			continue
		}
		for dx := range len(line) {
			x := left + dx
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			grid[y][x] = line[dx]
		}
	}
}

var (
	gliderPattern = []string{
		".*.",
		"..*",
		"***",
	}
	blinkerPattern = []string{"***"}
)

// GliderRows returns a rows x columns board with a glider in the top left corner
func GliderRows(rows, columns int) []string {
	grid := deadRows(rows, columns)
	stamp(grid, 0, 0, gliderPattern)
	return joinRows(grid)
}

// BlinkerRows returns a rows x columns board with a blinker centred on it
func BlinkerRows(rows, columns int) []string {
	grid := deadRows(rows, columns)
	stamp(grid, rows/2, columns/2-1, blinkerPattern)
	return joinRows(grid)
}

// RandomRows fills a rows x columns board, each cell alive with probability density
func RandomRows(rows, columns int, density float64, rng *rand.Rand) []string {
	grid := deadRows(rows, columns)
	for y := range rows {
		for x := range columns {
			if rng.Float64() < density {
				grid[y][x] = byte(Alive)
			}
		}
	}
	return joinRows(grid)
}

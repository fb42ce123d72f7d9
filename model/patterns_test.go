package model

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGliderRows(t *testing.T) {
	got := GliderRows(4, 5)
	want := []string{".*...", "..*..", "***..", "....."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GliderRows(4, 5) = %v, want %v", got, want)
	}
}

func TestGliderRowsClipped(t *testing.T) {
	got := GliderRows(2, 2)
	want := []string{".*", ".."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GliderRows(2, 2) = %v, want %v", got, want)
	}
}

func TestBlinkerRows(t *testing.T) {
	got := BlinkerRows(5, 5)
	want := []string{".....", ".....", ".***.", ".....", "....."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BlinkerRows(5, 5) = %v, want %v", got, want)
	}
}

func TestRandomRows(t *testing.T) {
	a := RandomRows(6, 7, 0.5, rand.New(rand.NewSource(42)))
	b := RandomRows(6, 7, 0.5, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("RandomRows() with the same seed differ: %v vs %v", a, b)
	}

	board, err := NewBoard(a...)
	if err != nil {
		t.Fatalf("NewBoard(RandomRows()) error = %v", err)
	}
	if board.Rows() != 6 || board.Columns() != 7 {
		t.Errorf("size = %dx%d, want 6x7", board.Rows(), board.Columns())
	}

	if n := MustNewBoard(RandomRows(3, 3, 0, rand.New(rand.NewSource(1)))...).CountLivingCells(); n != 0 {
		t.Errorf("density 0 gave %d live cells", n)
	}
	if n := MustNewBoard(RandomRows(3, 3, 1, rand.New(rand.NewSource(1)))...).CountLivingCells(); n != 9 {
		t.Errorf("density 1 gave %d live cells, want 9", n)
	}
}

package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsRecord(t *testing.T) {
	s := NewStats()

	s.Record(0, 10, 0)
	if s.AveragePopulation != 10 || s.GenerationsPerSecond != 0 || s.PeakPopulation != 10 {
		t.Errorf("after first record = %+v", s)
	}

	s.Record(1, 20, 100*time.Millisecond)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Record(2, 5, 100*time.Millisecond)
	if s.Generation != 2 || s.Population != 5 || s.PeakPopulation != 20 {
		t.Errorf("Generation, Population, PeakPopulation = %d, %d, %d, want 2, 5, 20",
			s.Generation, s.Population, s.PeakPopulation)
	}
}

func TestStatsDensity(t *testing.T) {
	s := NewStats()
	s.Record(0, 5, 0)

	if got := s.Density(20); got != 25 {
		t.Errorf("Density(20) = %v, want 25", got)
	}
	if got := s.Density(0); got != 0 {
		t.Errorf("Density(0) = %v, want 0", got)
	}
}

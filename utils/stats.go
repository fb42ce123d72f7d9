package utils

import "time"

// populationSmoothing is the weight of the newest population in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks population and speed over the generations the front end shows
type Stats struct {
	Generation           int
	Population           int
	PeakPopulation       int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Record stores a rendered generation. frameTime is the time since the previous one.
func (s *Stats) Record(generation, population int, frameTime time.Duration) {
	s.Generation = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if frameTime > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(frameTime)
	}

	if generation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
}

// Density returns the living share of a board with the given cell count, in percent
func (s *Stats) Density(area int) float64 {
	if area <= 0 {
		return 0
	}
	return float64(s.Population) / float64(area) * 100
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

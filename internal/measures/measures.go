// Package measures computes the three measures of central tendency shown
// for each lesson dataset.
package measures

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/abhisek/daepyo/internal/lesson"
)

// ErrEmptyData is returned when a dataset has no values.
var ErrEmptyData = errors.New("dataset is empty")

// Summary holds the mean, median and mode of a dataset.
type Summary struct {
	Mean   float64 // rounded to one decimal place
	Median float64
	Mode   float64
}

// Value returns the measure named by s.
func (s Summary) Value(stat lesson.Stat) float64 {
	switch stat {
	case lesson.StatMean:
		return s.Mean
	case lesson.StatMedian:
		return s.Median
	default:
		return s.Mode
	}
}

// Compute returns the Summary of data. The input is not modified.
func Compute(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptyData
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	mean, err = stats.Round(mean, 1)
	if err != nil {
		return Summary{}, fmt.Errorf("round mean: %w", err)
	}

	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}

	return Summary{
		Mean:   mean,
		Median: median,
		Mode:   Mode(data),
	}, nil
}

// Mode returns the most frequent value. When several values share the
// highest count, the one that appears first in data wins.
func Mode(data []float64) float64 {
	counts := make(map[float64]int, len(data))
	var order []float64
	for _, v := range data {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var mode float64
	best := 0
	for _, v := range order {
		if counts[v] > best {
			mode, best = v, counts[v]
		}
	}
	return mode
}

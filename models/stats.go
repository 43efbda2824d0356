package models

import "math"

// QuadrantStats holds per-quadrant counts.
type QuadrantStats struct {
	Quadrant  Quadrant `json:"quadrant"`
	Title     string   `json:"title"`
	Total     int      `json:"total"`
	Completed int      `json:"completed"`
	Pending   int      `json:"pending"`
}

// Stats summarizes a collection.
type Stats struct {
	Quadrants      []QuadrantStats `json:"quadrants"`
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Pending        int             `json:"pending"`
	CompletionRate int             `json:"completion_rate"` // percent, rounded
}

// ComputeStats counts tasks per quadrant and overall.
func ComputeStats(c Collection) Stats {
	var s Stats
	for _, cfg := range quadrantConfigs {
		qs := QuadrantStats{Quadrant: cfg.ID, Title: cfg.Title}
		for _, t := range c[cfg.ID] {
			qs.Total++
			if t.Completed {
				qs.Completed++
			}
		}
		qs.Pending = qs.Total - qs.Completed

		s.Quadrants = append(s.Quadrants, qs)
		s.Total += qs.Total
		s.Completed += qs.Completed
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

package stats

import (
	"sort"
	"sync"
	"time"
)

const (
	// GroupSize records of one level are folded into a single record of the
	// next level, so memory stays bounded however long the player keeps going.
	GroupSize = 100
)

// Record is one finished game, or a group of games folded together.
type Record struct {
	StartTime        time.Time
	EndTime          time.Time
	CompressionIndex int
	GamesCount       int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	AverageDuration  float64 // seconds
}

// Summary is what the front ends display.
type Summary struct {
	Games           int
	AverageScore    float64
	MedianScore     float64
	BestScore       int
	AverageDuration time.Duration
}

// History keeps the record of games finished since the process started.
type History struct {
	mu        sync.RWMutex
	records   []Record
	groupSize int
}

func NewHistory() *History {
	return &History{groupSize: GroupSize}
}

// Add records a finished game.
func (h *History) Add(score int, start, end time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	secs := end.Sub(start).Seconds()
	h.records = append(h.records, Record{
		StartTime:       start,
		EndTime:         end,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		AverageDuration: secs,
	})
	h.compress()
}

// compress folds full groups level by level.
func (h *History) compress() {
	for level := 0; ; level++ {
		var same, rest []Record
		for _, r := range h.records {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(same) < h.groupSize {
			return
		}

		sort.Slice(same, func(i, j int) bool { return same[i].StartTime.Before(same[j].StartTime) })
		for len(same) >= h.groupSize {
			rest = append(rest, fold(same[:h.groupSize], level+1))
			same = same[h.groupSize:]
		}
		h.records = append(rest, same...)
	}
}

func fold(group []Record, level int) Record {
	out := Record{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
	}
	var score, duration float64
	var medians []float64
	for _, r := range group {
		if r.StartTime.Before(out.StartTime) {
			out.StartTime = r.StartTime
		}
		if r.EndTime.After(out.EndTime) {
			out.EndTime = r.EndTime
		}
		if r.MaxScore > out.MaxScore {
			out.MaxScore = r.MaxScore
		}
		score += r.AverageScore * float64(r.GamesCount)
		duration += r.AverageDuration * float64(r.GamesCount)
		out.GamesCount += r.GamesCount
		for i := 0; i < r.GamesCount; i++ {
			medians = append(medians, r.MedianScore)
		}
	}
	out.AverageScore = score / float64(out.GamesCount)
	out.AverageDuration = duration / float64(out.GamesCount)
	out.MedianScore = median(medians)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// Records returns a copy of the stored records.
func (h *History) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Record(nil), h.records...)
}

func (h *History) Summary() Summary {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var s Summary
	var score, duration float64
	var medians []float64
	for _, r := range h.records {
		s.Games += r.GamesCount
		score += r.AverageScore * float64(r.GamesCount)
		duration += r.AverageDuration * float64(r.GamesCount)
		if r.MaxScore > s.BestScore {
			s.BestScore = r.MaxScore
		}
		for i := 0; i < r.GamesCount; i++ {
			medians = append(medians, r.MedianScore)
		}
	}
	if s.Games == 0 {
		return s
	}
	s.AverageScore = score / float64(s.Games)
	s.MedianScore = median(medians)
	s.AverageDuration = time.Duration(duration / float64(s.Games) * float64(time.Second))
	return s
}

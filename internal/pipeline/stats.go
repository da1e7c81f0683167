package pipeline

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/fileinfo/internal/entity"
)

// RunStats tracks aggregate counters and totals across a scan.
type RunStats struct {
	ID            uuid.UUID
	Root          string
	Started       time.Time
	Elapsed       time.Duration
	Total         int
	Failed        int
	ByKind        map[entity.Kind]int
	TotalBytes    int64
	MediaDuration float64 // seconds, summed over media
}

func newRunStats(root string) RunStats {
	return RunStats{
		ID:      uuid.New(),
		Root:    root,
		Started: time.Now(),
		ByKind:  make(map[entity.Kind]int),
	}
}

func (s *RunStats) record(r Result) {
	s.Total++
	if r.Err != nil {
		s.Failed++
		return
	}
	s.ByKind[r.Entity.Kind()]++
	if size, err := r.Entity.Size(); err == nil {
		s.TotalBytes += size
	}
	if m, ok := r.Entity.(*entity.Medium); ok {
		s.MediaDuration += m.Duration()
	}
}

// Classified is the number of paths that resolved without error.
func (s *RunStats) Classified() int { return s.Total - s.Failed }

// Kinds returns the kinds seen, sorted by name.
func (s *RunStats) Kinds() []entity.Kind {
	kinds := make([]entity.Kind, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

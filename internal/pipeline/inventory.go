package pipeline

import (
	"time"

	"github.com/backmassage/fileinfo/internal/entity"
)

// Inventory is the JSON shape of a Report.
type Inventory struct {
	ID      string         `json:"id"`
	Root    string         `json:"root"`
	Started time.Time      `json:"started"`
	Elapsed string         `json:"elapsed"`
	Counts  map[string]int `json:"counts"`
	Failed  int            `json:"failed"`
	Bytes   int64          `json:"bytes"`
	Entries []Entry        `json:"entries"`
}

// Entry is one classified path in an Inventory.
type Entry struct {
	Path     string  `json:"path"`
	Kind     string  `json:"kind,omitempty"`
	Size     int64   `json:"size,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Inventory converts the report into its JSON shape.
func (r *Report) Inventory() Inventory {
	inv := Inventory{
		ID:      r.Stats.ID.String(),
		Root:    r.Stats.Root,
		Started: r.Stats.Started.UTC(),
		Elapsed: r.Stats.Elapsed.Round(time.Millisecond).String(),
		Counts:  make(map[string]int, len(r.Stats.ByKind)),
		Failed:  r.Stats.Failed,
		Bytes:   r.Stats.TotalBytes,
		Entries: make([]Entry, 0, len(r.Results)),
	}
	for k, n := range r.Stats.ByKind {
		inv.Counts[string(k)] = n
	}
	for _, res := range r.Results {
		e := Entry{Path: res.Path}
		if res.Err != nil {
			e.Error = res.Err.Error()
		} else {
			e.Kind = string(res.Entity.Kind())
			e.Size, _ = res.Entity.Size()
			if m, ok := res.Entity.(*entity.Medium); ok {
				e.Duration = m.Duration()
			}
		}
		inv.Entries = append(inv.Entries, e)
	}
	return inv
}

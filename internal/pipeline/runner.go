package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/backmassage/fileinfo/internal/display"
	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/logging"
)

// Options selects what a scan classifies and how wide it runs.
type Options struct {
	Root          string
	IncludeHidden bool
	Extensions    []string // empty means every file
	Workers       int      // values below 1 run a single worker
	Verbose       bool
}

// Result is the outcome for one path. Entity is nil when Err is set.
type Result struct {
	Path   string
	Entity entity.Entity
	Err    error
}

// Report is a finished (or interrupted) scan: stats plus one result per
// discovered path, in discovery order.
type Report struct {
	Stats   RunStats
	Results []Result
}

// Run discovers files under opts.Root and classifies them with a pool of
// opts.Workers goroutines. Classification failures are recorded per file;
// the returned error is a discovery failure or ctx's error after an
// interrupt, in which case the report holds what finished.
func Run(ctx context.Context, opts Options, reg *entity.Registry, log *logging.Logger) (*Report, error) {
	rep := &Report{Stats: newRunStats(opts.Root)}

	files, err := Discover(opts.Root, opts.IncludeHidden)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return rep, err
	}
	files = FilterExtensions(files, opts.Extensions)

	workers := max(opts.Workers, 1)
	log.Info("Scan %s (run %s): %d files, %d workers", opts.Root, rep.Stats.ID, len(files), workers)

	// Each worker writes only its own indices.
	results := make([]Result, len(files))
	done := make([]bool, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = classify(ctx, reg, files[idx])
				done[idx] = true
			}
		}()
	}

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i, r := range results {
		if !done[i] {
			continue
		}
		if r.Err != nil {
			log.Warn("%s: %v", r.Path, r.Err)
		} else {
			log.Debug(opts.Verbose, "%s: %s", r.Path, r.Entity.Kind())
		}
		rep.Stats.record(r)
		rep.Results = append(rep.Results, r)
	}
	rep.Stats.Elapsed = time.Since(rep.Stats.Started)

	logSummary(log, &rep.Stats)
	if err := ctx.Err(); err != nil {
		log.Warn("Interrupted after %d of %d files", rep.Stats.Total, len(files))
		return rep, err
	}
	return rep, nil
}

func classify(ctx context.Context, reg *entity.Registry, path string) Result {
	e, err := reg.Resolve(ctx, path)
	return Result{Path: path, Entity: e, Err: err}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d classified, %d failed in %s", stats.Classified(), stats.Failed, stats.Elapsed.Round(time.Millisecond))
	for _, k := range stats.Kinds() {
		log.Info("  %-10s %d", k, stats.ByKind[k])
	}
	log.Info("  Total size: %s", display.FormatBytes(stats.TotalBytes))
	if stats.MediaDuration > 0 {
		log.Info("  Media duration: %s", display.FormatTimestamp(stats.MediaDuration))
	}
	if stats.Failed == 0 {
		log.Success("Scan complete")
	}
}

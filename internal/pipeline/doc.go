// Package pipeline discovers files under a root and classifies them
// concurrently, producing per-file results and aggregate run stats.
//
// Types:
//   - Options (root, hidden-entry policy, extension filter, worker count)
//   - Result (path, classified entity or error)
//   - RunStats (run ID, counts per kind, failures, byte and media totals)
//   - Report (stats plus results in discovery order)
//
// Functions:
//   - Discover(root, includeHidden) → []string, naturally sorted
//   - Run(ctx, opts, registry, log) → *Report
package pipeline

// Package naming builds destination paths for the copy and move commands:
// file-name sanitizing, tag-based organised layouts, and collision
// resolution so no two sources land on the same destination.
package naming

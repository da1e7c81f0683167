package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoTool is returned by MediaInfo when no binary path was configured.
var ErrNoTool = errors.New("mediainfo binary not configured")

// Prober produces a report for a path. Any error means "not a medium" to
// the classifier; it is never fatal.
type Prober interface {
	Probe(ctx context.Context, path string) (*Report, error)
}

// ProberFunc adapts an ordinary function to the Prober interface.
type ProberFunc func(ctx context.Context, path string) (*Report, error)

// Probe calls f(ctx, path).
func (f ProberFunc) Probe(ctx context.Context, path string) (*Report, error) {
	return f(ctx, path)
}

// DefaultOutput selects the legacy XML layout whose Duration is expressed
// in milliseconds and whose Menu fields carry _HH_MM_SSmmm chapter names.
const DefaultOutput = "OLDXML"

// MediaInfo runs the mediainfo CLI. Binary is resolved once at process
// start (see check.ResolveMediaInfo) and never looked up per call.
type MediaInfo struct {
	Binary  string
	Output  string        // --Output value; DefaultOutput when empty.
	Timeout time.Duration // Per-call limit; zero means no limit.
}

// Raw runs mediainfo against path and returns its unparsed stdout.
func (m MediaInfo) Raw(ctx context.Context, path string) ([]byte, error) {
	if m.Binary == "" {
		return nil, ErrNoTool
	}
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	output := m.Output
	if output == "" {
		output = DefaultOutput
	}
	// mediainfo would read a leading dash as an option.
	if strings.HasPrefix(path, "-") {
		path = "./" + path
	}

	cmd := exec.CommandContext(ctx, m.Binary, "--Output="+output, "-f", path)
	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("mediainfo %q: %w", path, ctxErr)
		}
		return nil, fmt.Errorf("mediainfo %q: %w", path, err)
	}
	return out, nil
}

// Probe runs a single mediainfo XML call against path and parses it.
func (m MediaInfo) Probe(ctx context.Context, path string) (*Report, error) {
	out, err := m.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseXML(out)
}

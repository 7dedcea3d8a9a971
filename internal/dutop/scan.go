package dutop

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// counters tracks walk progress for the reporter goroutine.
type counters struct {
	items atomic.Int64
	bytes atomic.Int64
}

// startProgressReporter invokes hook(items, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, c *counters, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.items.Load(), c.bytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks the tree at opt.Path, records an Item per reachable entry, and
// propagates sizes and counts into every enclosing directory.
//
// Symlinks are never followed; each entry is captured with its own lstat
// metadata. A per-entry stat failure is reported on diag and prunes the
// affected subtree without aborting the walk. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, diag io.Writer, progressHook func(items, bytes int64)) (*Scan, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if diag == nil {
		diag = os.Stderr
	}

	if info, err := os.Lstat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	scan := &Scan{
		Root:  opt.Path,
		Items: make(map[string]*Item),
	}

	var progress counters

	// Child context so the progress reporter stops when the walk returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, &progress, progressHook, opt.ProgressInterval)

	conf := &fastwalk.Config{
		Follow: false,
		// One worker keeps traversal sequential and the encounter order
		// deterministic.
		NumWorkers: 1,
	}

	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(diag, "dutop: skipping %s: %v\n", path, err)

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		info, err := d.Info()
		if err != nil {
			fmt.Fprintf(diag, "dutop: skipping %s: %v\n", path, err)

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.IsDir() && info.Size() < opt.MinSize {
			return nil
		}

		scan.add(&Item{
			Path:  path,
			Size:  info.Size(),
			IsDir: d.IsDir(),
		})

		progress.items.Add(1)
		progress.bytes.Add(info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	Aggregate(scan)

	return scan, nil
}

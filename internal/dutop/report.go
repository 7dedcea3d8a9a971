package dutop

import (
	"errors"
	"sort"
)

// DefaultTopN is the default number of entries per ranked list.
const DefaultTopN = 20

// ErrEmptyScan is returned when a report is requested for a scan that
// recorded no items.
var ErrEmptyScan = errors.New("empty result set: no items were scanned")

// Report holds the ranked summary derived from one scan.
type Report struct {
	// TotalItems is the number of entries recorded by the scan.
	TotalItems int `json:"total_items"`
	// TotalFiles is the number of non-directory entries.
	TotalFiles int `json:"total_files"`
	// TotalDirs is the number of directory entries.
	TotalDirs int `json:"total_dirs"`
	// TotalSize is the size of the single largest item, not a sum. In
	// practice this is the scan root, which accumulates everything.
	TotalSize int64 `json:"total_size"`
	// TopFilesBySize contains the N largest files.
	TopFilesBySize []Item `json:"top_files_by_size"`
	// TopDirsBySize contains the N largest directories.
	TopDirsBySize []Item `json:"top_dirs_by_size"`
	// TopDirsByCount contains the N directories with the most entries.
	TopDirsByCount []Item `json:"top_dirs_by_count"`
	// TopN is the ranking size the report was built with.
	TopN int `json:"top_n"`
}

// BuildReport partitions the scanned items and selects the top-N rankings.
// The scan must already be aggregated.
func BuildReport(s *Scan, topN int) (*Report, error) {
	if len(s.Order) == 0 {
		return nil, ErrEmptyScan
	}

	if topN <= 0 {
		topN = DefaultTopN
	}

	var (
		files   []Item
		dirs    []Item
		maxSize int64
	)

	for i, path := range s.Order {
		it := *s.Items[path]

		if i == 0 || it.Size > maxSize {
			maxSize = it.Size
		}

		if it.IsDir {
			dirs = append(dirs, it)
		} else {
			files = append(files, it)
		}
	}

	return &Report{
		TotalItems:     len(s.Order),
		TotalFiles:     len(files),
		TotalDirs:      len(dirs),
		TotalSize:      maxSize,
		TopFilesBySize: topBy(files, topN, func(it Item) int64 { return it.Size }),
		TopDirsBySize:  topBy(dirs, topN, func(it Item) int64 { return it.Size }),
		TopDirsByCount: topBy(dirs, topN, func(it Item) int64 { return int64(it.FileCount) }),
		TopN:           topN,
	}, nil
}

// topBy returns at most n items sorted descending by key. Ties keep their
// encounter order.
func topBy(items []Item, n int, key func(Item) int64) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})

	if len(out) > n {
		out = out[:n]
	}

	return out
}

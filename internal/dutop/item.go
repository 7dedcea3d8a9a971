package dutop

import "time"

// Item is a single filesystem entry captured during a scan.
type Item struct {
	// Path is the entry's path as encountered during the walk. Unique key.
	Path string `json:"path"`
	// Size is the raw lstat size at scan time. Directory sizes are
	// augmented during aggregation with the raw sizes of all descendants.
	Size int64 `json:"size"`
	// IsDir reports whether the entry is a directory. Fixed at creation.
	IsDir bool `json:"is_directory"`
	// FileCount is the number of entries strictly beneath this one.
	// Zero at creation, filled in during aggregation.
	FileCount int `json:"file_count"`
}

// Scan holds every item recorded during one walk.
type Scan struct {
	// Root is the cleaned path the walk started at.
	Root string
	// Items maps each path to its record.
	Items map[string]*Item
	// Order lists paths in the order the walk encountered them. Ranking
	// uses it to keep ties stable.
	Order []string
}

// add records an item under its path.
func (s *Scan) add(it *Item) {
	s.Items[it.Path] = it
	s.Order = append(s.Order, it.Path)
}

// InOrder returns the items in the order the walk encountered them.
func (s *Scan) InOrder() []*Item {
	items := make([]*Item, 0, len(s.Order))
	for _, path := range s.Order {
		items = append(items, s.Items[path])
	}

	return items
}

// Options configures a scan and the CLI behavior around it.
type Options struct {
	// Path is the directory to scan.
	Path string
	// TopN is the number of entries per ranked list.
	TopN int
	// MinSize is the minimum file size in bytes; smaller files are not
	// recorded. Directories are never size-filtered.
	MinSize int64
	// OutputFormat selects the renderer (text or json).
	OutputFormat string
	// DumpItems bypasses the reporter and prints every scanned item.
	DumpItems bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Integration indicates whether to output the shell integration script.
	Integration bool
}

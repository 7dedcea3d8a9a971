package dutop

import "path/filepath"

// Aggregate propagates every item's raw size and presence up its chain of
// ancestor directories, from the immediate parent up to and including the
// scan root. Each ancestor gains one FileCount per strict descendant plus
// the descendant's raw stat size.
//
// A directory therefore ends up with its own stat size plus the sum of raw
// stat sizes of everything beneath it. Subdirectories contribute their
// inode size, not their rolled-up total; raw sizes are snapshotted up front
// so in-place mutation cannot leak into later contributions.
func Aggregate(s *Scan) {
	raw := make(map[string]int64, len(s.Order))
	for _, path := range s.Order {
		raw[path] = s.Items[path].Size
	}

	for _, path := range s.Order {
		size := raw[path]

		for p := path; p != s.Root; p = filepath.Dir(p) {
			parent := filepath.Dir(p)
			if parent == p {
				// Reached the filesystem root without meeting the scan
				// root; nothing above it is ours to touch.
				break
			}

			if anc, ok := s.Items[parent]; ok {
				anc.FileCount++
				anc.Size += size
			}
		}
	}
}

// Package dutop walks a directory tree, records per-entry statistics, and
// derives ranked disk-usage summaries.
//
// The walk records one Item per reachable filesystem entry, tolerating
// per-entry stat failures by pruning the affected subtree. A single
// aggregation pass then propagates each entry's raw size and presence into
// every enclosing directory inside the scanned root.
package dutop

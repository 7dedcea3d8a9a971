package dutop

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestBuildReportTotals(t *testing.T) {
	root := "root"
	s := newScan(root,
		&Item{Path: root, IsDir: true},
		&Item{Path: filepath.Join(root, "a"), Size: 100},
		&Item{Path: filepath.Join(root, "b"), IsDir: true},
		&Item{Path: filepath.Join(root, "b", "c"), Size: 50},
	)
	Aggregate(s)

	report, err := BuildReport(s, 0)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	if report.TotalItems != 4 || report.TotalFiles != 2 || report.TotalDirs != 2 {
		t.Errorf("totals = {%d, %d, %d}, want {4, 2, 2}",
			report.TotalItems, report.TotalFiles, report.TotalDirs)
	}

	if report.TotalFiles+report.TotalDirs != report.TotalItems {
		t.Errorf("partition does not cover the collection: %d + %d != %d",
			report.TotalFiles, report.TotalDirs, report.TotalItems)
	}

	// TotalSize is the single largest item, not a sum. Here the root
	// accumulated everything.
	if report.TotalSize != 150 {
		t.Errorf("total size = %d, want 150", report.TotalSize)
	}

	if report.TopN != DefaultTopN {
		t.Errorf("top n = %d, want default %d", report.TopN, DefaultTopN)
	}
}

func TestBuildReportEmptyScan(t *testing.T) {
	s := newScan("root")

	if _, err := BuildReport(s, 5); !errors.Is(err, ErrEmptyScan) {
		t.Fatalf("error = %v, want ErrEmptyScan", err)
	}
}

func TestBuildReportTopKOrderAndTies(t *testing.T) {
	root := "root"
	s := newScan(root,
		&Item{Path: root, IsDir: true},
		&Item{Path: filepath.Join(root, "small"), Size: 10},
		&Item{Path: filepath.Join(root, "first"), Size: 30},
		&Item{Path: filepath.Join(root, "mid"), Size: 20},
		&Item{Path: filepath.Join(root, "second"), Size: 30},
	)

	report, err := BuildReport(s, 3)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	got := report.TopFilesBySize
	if len(got) != 3 {
		t.Fatalf("top files length = %d, want 3", len(got))
	}

	want := []string{
		filepath.Join(root, "first"),
		filepath.Join(root, "second"),
		filepath.Join(root, "mid"),
	}

	for i, path := range want {
		if got[i].Path != path {
			t.Errorf("top files[%d] = %s, want %s", i, got[i].Path, path)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].Size > got[i-1].Size {
			t.Errorf("top files not descending at index %d", i)
		}
	}
}

func TestBuildReportLargeKReturnsWholePartition(t *testing.T) {
	root := "root"
	s := newScan(root,
		&Item{Path: root, IsDir: true},
		&Item{Path: filepath.Join(root, "a"), Size: 1},
		&Item{Path: filepath.Join(root, "b"), Size: 2},
	)

	report, err := BuildReport(s, 100)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	if len(report.TopFilesBySize) != 2 {
		t.Errorf("top files length = %d, want 2", len(report.TopFilesBySize))
	}
	if len(report.TopDirsBySize) != 1 {
		t.Errorf("top dirs length = %d, want 1", len(report.TopDirsBySize))
	}
}

func TestBuildReportDirsByCount(t *testing.T) {
	root := "root"
	busy := filepath.Join(root, "busy")
	quiet := filepath.Join(root, "quiet")

	s := newScan(root,
		&Item{Path: root, IsDir: true},
		&Item{Path: busy, IsDir: true},
		&Item{Path: quiet, IsDir: true},
		&Item{Path: filepath.Join(busy, "a"), Size: 1},
		&Item{Path: filepath.Join(busy, "b"), Size: 1},
		&Item{Path: filepath.Join(quiet, "c"), Size: 500},
	)
	Aggregate(s)

	report, err := BuildReport(s, 2)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	got := report.TopDirsByCount
	if len(got) != 2 {
		t.Fatalf("top dirs by count length = %d, want 2", len(got))
	}

	// Root counts all five descendants; busy holds two entries to quiet's one.
	if got[0].Path != root || got[0].FileCount != 5 {
		t.Errorf("top dirs by count[0] = {%s, %d}, want {%s, 5}", got[0].Path, got[0].FileCount, root)
	}
	if got[1].Path != busy || got[1].FileCount != 2 {
		t.Errorf("top dirs by count[1] = {%s, %d}, want {%s, 2}", got[1].Path, got[1].FileCount, busy)
	}
}

func TestBuildReportTotalSizeIsMaxNotSum(t *testing.T) {
	// No aggregation here: sizes stay as constructed, and the report must
	// pick the maximum rather than add them up.
	root := "root"
	s := newScan(root,
		&Item{Path: root, Size: 5, IsDir: true},
		&Item{Path: filepath.Join(root, "big"), Size: 900},
		&Item{Path: filepath.Join(root, "small"), Size: 100},
	)

	report, err := BuildReport(s, 10)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}

	if report.TotalSize != 900 {
		t.Errorf("total size = %d, want 900", report.TotalSize)
	}
}

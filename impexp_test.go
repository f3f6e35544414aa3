package sellbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const export1 = "\xef\xbb\xbf" + `Transaction report
Seller ID,someone

Transaction creation date,Type,Order number,Item title,Item subtotal
,,,,
2024-06-02,Order,100,Widget,20.00
2024-06-01,Order,101,Gadget,15.00
2024-06-02,Payout,,,-35.00
`

const export2 = `Transaction creation date,Type,Order number,Item title,Item subtotal
2024-06-02,Order,100,Widget,20.00
2024-06-03,Order,102,Widget,20.00
`

func testImporter(t *testing.T) (*Importer, string) {
	t.Helper()
	dir := t.TempDir()
	reports := filepath.Join(dir, "reports")
	if err := os.Mkdir(reports, 0o755); err != nil {
		t.Fatal(err)
	}
	return &Importer{
		ReportsDir: reports,
		Database:   filepath.Join(dir, "ledger.csv"),
		CacheFile:  filepath.Join(dir, "imported.txt"),
	}, reports
}

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestImporterRun(t *testing.T) {
	imp, reports := testImporter(t)
	writeExport(t, reports, "export1.csv", export1)

	result, err := imp.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Files = %v, want one file", result.Files)
	}
	if result.Rows != 2 {
		t.Errorf("Rows = %d, want 2", result.Rows)
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1 (the payout row)", result.Dropped)
	}

	header, rows, err := readRawCSV(imp.Database)
	if err != nil {
		t.Fatalf("reading database: %v", err)
	}
	if header[0] != colDate {
		t.Errorf("database header starts with %q", header[0])
	}
	// rows come out sorted by date
	if rows[0][0] != "2024-06-01" || rows[1][0] != "2024-06-02" {
		t.Errorf("database rows not in date order: %v", rows)
	}

	cache, err := os.ReadFile(imp.CacheFile)
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	if !strings.Contains(string(cache), "export1.csv") {
		t.Errorf("cache = %q, want export1.csv recorded", cache)
	}
}

func TestImporterSkipsCachedFiles(t *testing.T) {
	imp, reports := testImporter(t)
	writeExport(t, reports, "export1.csv", export1)

	if _, err := imp.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	result, err := imp.Run()
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("second run merged %v, want nothing", result.Files)
	}
	if result.Rows != 2 {
		t.Errorf("second run Rows = %d, want 2", result.Rows)
	}
}

func TestImporterDeduplicates(t *testing.T) {
	imp, reports := testImporter(t)
	writeExport(t, reports, "export1.csv", export1)
	if _, err := imp.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	// the second export repeats order 100 and adds order 102
	writeExport(t, reports, "export2.csv", export2)
	result, err := imp.Run()
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if result.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", result.Duplicates)
	}
	if result.Rows != 3 {
		t.Errorf("Rows = %d, want 3", result.Rows)
	}
}

func TestImporterEmptyDir(t *testing.T) {
	imp, _ := testImporter(t)
	result, err := imp.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != 0 || result.Rows != 0 {
		t.Errorf("empty run result = %+v", result)
	}
}

package sellbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Importer merges raw marketplace export files into the ledger database.
//
// Raw exports carry a UTF-8 BOM and a metadata preamble before the
// actual header row. Each export is merged at most once: the names of
// already-merged files are remembered in a cache file next to the
// exports.
type Importer struct {
	ReportsDir string // directory scanned for *.csv export files
	Database   string // path of the merged csv database
	CacheFile  string // remembers already-imported export files
}

// ImportResult summarizes one importer run.
type ImportResult struct {
	Files      []string // newly merged export files
	Rows       int      // rows now in the database
	Duplicates int      // rows dropped as duplicate order numbers
	Dropped    int      // payout and refund rows dropped
}

// Run merges any new export files into the database: strips the export
// preamble, drops Payout/Refund rows, deduplicates by order number
// keeping the first occurrence, sorts by transaction date, and appends
// the file names to the import cache.
func (imp *Importer) Run() (*ImportResult, error) {
	exports, err := filepath.Glob(filepath.Join(imp.ReportsDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", imp.ReportsDir, err)
	}
	sort.Strings(exports)

	cached, err := imp.readCache()
	if err != nil {
		return nil, err
	}

	var news []string
	for _, file := range exports {
		if !cached[filepath.Base(file)] {
			news = append(news, file)
		}
	}

	result := &ImportResult{Files: news}

	// Load the current database, raw. The database is glue, not model:
	// rows stay as raw csv records so unknown columns survive a merge.
	dbHeader, dbRows, err := readRawCSV(imp.Database)
	if err != nil {
		return nil, err
	}

	for _, file := range news {
		header, rows, err := readExport(file)
		if err != nil {
			return nil, fmt.Errorf("reading export %s: %w", file, err)
		}
		if dbHeader == nil {
			dbHeader = header
		}
		dbRows = append(dbRows, conformRows(dbHeader, header, rows)...)
	}

	if dbHeader != nil {
		h := newHeader(dbHeader)
		orderCol := h.optional("Order number")
		typeCol := h.optional("Type")
		dateCol := h.optional(colDate)

		dbRows, result.Dropped = dropTypes(dbRows, typeCol, "Payout", "Refund")
		dbRows, result.Duplicates = dedupe(dbRows, orderCol)
		sortByDate(dbRows, dateCol)

		if err := writeRawCSV(imp.Database, dbHeader, dbRows); err != nil {
			return nil, err
		}
	}
	result.Rows = len(dbRows)

	if err := imp.appendCache(news); err != nil {
		return nil, err
	}
	return result, nil
}

func (imp *Importer) readCache() (map[string]bool, error) {
	cached := make(map[string]bool)
	data, err := os.ReadFile(imp.CacheFile)
	if os.IsNotExist(err) {
		return cached, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading import cache: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cached[line] = true
		}
	}
	return cached, nil
}

func (imp *Importer) appendCache(files []string) error {
	if len(files) == 0 {
		return nil
	}
	f, err := os.OpenFile(imp.CacheFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import cache: %w", err)
	}
	defer f.Close()
	for _, file := range files {
		if _, err := fmt.Fprintln(f, filepath.Base(file)); err != nil {
			return fmt.Errorf("writing import cache: %w", err)
		}
	}
	return nil
}

// readExport reads a raw export file: strips the UTF-8 BOM and skips the
// metadata preamble up to the header row.
func readExport(file string) (header []string, rows [][]string, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	lines := strings.Split(string(data), "\n")
	start := -1
	for i, line := range lines {
		if strings.Contains(line, colDate) || strings.Contains(line, "Order number") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, nil, fmt.Errorf("no header row found")
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	// Drop blank filler rows such as the one following the header.
	var kept [][]string
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		kept = append(kept, record)
	}
	return records[0], kept, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// conformRows reorders an export's rows to the database column order.
func conformRows(dbHeader, header []string, rows [][]string) [][]string {
	h := newHeader(header)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		conformed := make([]string, len(dbHeader))
		for i, col := range dbHeader {
			conformed[i] = cell(row, h.optional(col))
		}
		out = append(out, conformed)
	}
	return out
}

func dropTypes(rows [][]string, typeCol int, types ...string) (kept [][]string, dropped int) {
	if typeCol < 0 {
		return rows, 0
	}
	for _, row := range rows {
		drop := false
		for _, t := range types {
			if cell(row, typeCol) == t {
				drop = true
				break
			}
		}
		if drop {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	return kept, dropped
}

// dedupe keeps the first row for each order number; rows with no order
// number are always kept.
func dedupe(rows [][]string, orderCol int) (kept [][]string, duplicates int) {
	if orderCol < 0 {
		return rows, 0
	}
	seen := make(map[string]bool)
	for _, row := range rows {
		order := cell(row, orderCol)
		if order != "" && seen[order] {
			duplicates++
			continue
		}
		seen[order] = true
		kept = append(kept, row)
	}
	return kept, duplicates
}

func sortByDate(rows [][]string, dateCol int) {
	if dateCol < 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		di, erri := ParseDate(cell(rows[i], dateCol))
		dj, errj := ParseDate(cell(rows[j], dateCol))
		if erri != nil || errj != nil {
			if erri != nil {
				log.Printf("unsortable row date %q", cell(rows[i], dateCol))
			}
			return false
		}
		return di.Before(dj)
	})
}

func readRawCSV(file string) ([]string, [][]string, error) {
	f, err := os.Open(file)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func writeRawCSV(file string, header []string, rows [][]string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Package runlog keeps an append-only CSV history of analysis runs
// under a project directory. The CLI writes one row per run; the
// analysis engine itself never logs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the analysis log.
type Entry struct {
	Timestamp time.Time
	Command   string // analyze, freedom, import, ...
	Health    string // overall health at the time of the run, if any
	Freedom   string // freedom label at the time of the run, if any
	Details   string
}

// Header is the CSV header for analysis-log.csv.
const Header = "timestamp,command,health,freedom,details"

const (
	numFields    = 5
	logDir       = "logs"
	logFile      = "logs/analysis-log.csv"
	colTimestamp = 0
	colCommand   = 1
	colHealth    = 2
	colFreedom   = 3
	colDetails   = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colHealth] = e.Health
	row[colFreedom] = e.Freedom
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(row []string) (Entry, error) {
	if len(row) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}
	ts, err := time.Parse(time.RFC3339, row[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", row[colTimestamp], err)
	}
	return Entry{
		Timestamp: ts,
		Command:   row[colCommand],
		Health:    row[colHealth],
		Freedom:   row[colFreedom],
		Details:   row[colDetails],
	}, nil
}

// Append writes an entry to <dir>/logs/analysis-log.csv, creating the
// file and header if needed.
func Append(dir string, e Entry) error {
	if err := os.MkdirAll(filepath.Join(dir, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dir, logFile)
	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening analysis log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing log row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <dir>/logs/analysis-log.csv. A missing
// log reads as empty.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening analysis log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading analysis log: %w", err)
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 && strings.Join(row, ",") == Header {
			continue
		}
		e, err := UnmarshalEntry(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

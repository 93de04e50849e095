// Package export renders ordered registration sequences as delimited text.
//
// The format is fixed by the consumers of the exported files: a plain
// header row, then one row per record with every field value double-quoted
// and internal quotes doubled. encoding/csv is deliberately not used here
// because it only quotes fields that need it, and the downstream tooling
// expects every value quoted.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// TimestampLayout formats the registration date column.
const TimestampLayout = "2006-01-02 15:04:05"

var header = []string{"ID", "Name", "Email", "Type", "Company", "Phone", "Registration Date"}

// Writer streams registrations as CSV rows.
type Writer struct {
	w io.Writer
}

// NewWriter creates a CSV writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the fixed column header.
func (cw *Writer) WriteHeader() error {
	if _, err := io.WriteString(cw.w, strings.Join(header, ",")+"\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// WriteRecord writes one registration row.
func (cw *Writer) WriteRecord(r model.Registration) error {
	fields := []string{
		fmt.Sprintf("%d", r.ID),
		r.Name,
		r.Email,
		r.Category,
		r.Company,
		r.Phone,
		r.CreatedAt.Format(TimestampLayout),
	}

	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}

	if _, err := io.WriteString(cw.w, strings.Join(quoted, ",")+"\n"); err != nil {
		return fmt.Errorf("failed to write record %d: %w", r.ID, err)
	}
	return nil
}

// Write renders the whole sequence in order: header first, then one row per
// record.
func Write(w io.Writer, registrations []model.Registration) error {
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	for _, r := range registrations {
		if err := cw.WriteRecord(r); err != nil {
			return err
		}
	}
	return nil
}

// Filename builds the conventional export file name, e.g.
// all_registrations_2025-03-15.csv.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("2006-01-02"))
}

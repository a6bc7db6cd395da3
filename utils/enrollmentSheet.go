package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"
)

// SheetHeaders is the canonical header row of the enrollment spreadsheet.
var SheetHeaders = []string{"Timestamp", "Student Name", "Email", "Course", "Phone"}

// EnrollmentEntry is one enrollment submission headed for the spreadsheet
// and the notification channels. It is never persisted relationally.
type EnrollmentEntry struct {
	Timestamp   time.Time
	Name        string
	Email       string
	Phone       string
	CourseID    uint
	CourseTitle string
	ExtraInfo   string
	Reference   string
}

// Row renders the entry as the spreadsheet row, applying the canonical
// normalization: trimmed fields, lowercased email, second-precision local time.
func (e *EnrollmentEntry) Row() []string {
	return []string{
		e.Timestamp.Format("2006-01-02 15:04:05"),
		strings.TrimSpace(e.Name),
		strings.ToLower(strings.TrimSpace(e.Email)),
		strings.TrimSpace(e.CourseTitle),
		strings.TrimSpace(e.Phone),
	}
}

// SheetRecorder appends enrollment rows to a shared xlsx artifact. Writers
// from any process serialize on an exclusive file lock, so concurrent
// submissions never corrupt or truncate the workbook.
type SheetRecorder struct {
	Path string // absolute path of the workbook
}

// NewSheetRecorder places the workbook at <mediaRoot>/enrollments/enrollments.xlsx.
func NewSheetRecorder(mediaRoot string) *SheetRecorder {
	return &SheetRecorder{Path: filepath.Join(mediaRoot, "enrollments", "enrollments.xlsx")}
}

// Record appends one enrollment row, bootstrapping or repairing the header
// first. The lock spans the whole read-modify-write so at most one writer
// touches the artifact at a time.
func (r *SheetRecorder) Record(entry *EnrollmentEntry) error {
	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create enrollments directory: %w", err)
	}

	lock := flock.New(r.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock enrollment sheet: %w", err)
	}
	defer lock.Unlock()

	f, sheet, err := r.openWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	// Header repair must precede the append: a missing or legacy header
	// means the existing rows are untrusted and are dropped wholesale.
	first, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		return fmt.Errorf("failed to read sheet header: %w", err)
	}
	if first != SheetHeaders[0] {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("failed to read sheet rows: %w", err)
		}
		for i := len(rows); i >= 1; i-- {
			if err := f.RemoveRow(sheet, i); err != nil {
				return fmt.Errorf("failed to clear sheet row %d: %w", i, err)
			}
		}
		if err := f.SetSheetRow(sheet, "A1", &SheetHeaders); err != nil {
			return fmt.Errorf("failed to write sheet header: %w", err)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet rows: %w", err)
	}
	row := entry.Row()
	cell, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to append enrollment row: %w", err)
	}

	if err := r.autoSizeColumns(f, sheet); err != nil {
		return err
	}

	if err := f.SaveAs(r.Path); err != nil {
		return fmt.Errorf("failed to save enrollment sheet: %w", err)
	}
	return nil
}

// ErrNoEnrollments means the workbook has not been created yet.
var ErrNoEnrollments = errors.New("enrollment sheet does not exist")

// Export returns the workbook bytes for download. The lock is held for the
// read so a concurrent writer's save never yields a torn file.
func (r *SheetRecorder) Export() ([]byte, error) {
	if _, err := os.Stat(r.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoEnrollments
		}
		return nil, fmt.Errorf("failed to stat enrollment sheet: %w", err)
	}

	lock := flock.New(r.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock enrollment sheet: %w", err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enrollment sheet: %w", err)
	}
	return data, nil
}

// openWorkbook loads the existing artifact or starts a fresh one.
func (r *SheetRecorder) openWorkbook() (*excelize.File, string, error) {
	if _, err := os.Stat(r.Path); err == nil {
		f, err := excelize.OpenFile(r.Path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open enrollment sheet: %w", err)
		}
		return f, f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	f := excelize.NewFile()
	return f, f.GetSheetName(f.GetActiveSheetIndex()), nil
}

// autoSizeColumns sets every column's width to its longest cell plus padding.
// O(rows x cols) on each write; fine at this log's scale.
func (r *SheetRecorder) autoSizeColumns(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet rows: %w", err)
	}
	widths := make([]int, len(SheetHeaders))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, float64(w+2)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}
	return nil
}

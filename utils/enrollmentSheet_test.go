package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testEntry(name, email, course string) *EnrollmentEntry {
	return &EnrollmentEntry{
		Timestamp:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local),
		Name:        name,
		Email:       email,
		Phone:       " 555-1212 ",
		CourseTitle: course,
		Reference:   "test-ref",
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	return rows
}

func TestRecordBootstrapsHeader(t *testing.T) {
	r := NewSheetRecorder(t.TempDir())

	require.NoError(t, r.Record(testEntry(" Asha ", "ASHA@X.COM", " Deep Learning ")))

	rows := readRows(t, r.Path)
	require.Len(t, rows, 2)
	assert.Equal(t, SheetHeaders, rows[0])
	assert.Equal(t, []string{"2025-06-01 10:30:00", "Asha", "asha@x.com", "Deep Learning", "555-1212"}, rows[1])
}

func TestRecordAppendsSequentially(t *testing.T) {
	r := NewSheetRecorder(t.TempDir())

	const n = 5
	for i := 0; i < n; i++ {
		entry := testEntry(fmt.Sprintf("Student %d", i), fmt.Sprintf("s%d@x.com", i), "Python Programming")
		require.NoError(t, r.Record(entry))
	}

	rows := readRows(t, r.Path)
	assert.Len(t, rows, n+1)
	assert.Equal(t, SheetHeaders, rows[0])
}

func TestRecordRepairsForeignHeader(t *testing.T) {
	dir := t.TempDir()
	r := NewSheetRecorder(dir)

	// Plant a legacy-format workbook with a wrong header and stale rows
	require.NoError(t, os.MkdirAll(filepath.Dir(r.Path), 0755))
	legacy := excelize.NewFile()
	sheet := legacy.GetSheetName(legacy.GetActiveSheetIndex())
	require.NoError(t, legacy.SetSheetRow(sheet, "A1", &[]string{"Name", "Phone"}))
	require.NoError(t, legacy.SetSheetRow(sheet, "A2", &[]string{"old", "data"}))
	require.NoError(t, legacy.SaveAs(filepath.Join(dir, "enrollments", "enrollments.xlsx")))
	require.NoError(t, legacy.Close())

	require.NoError(t, r.Record(testEntry("Asha", "asha@x.com", "Deep Learning")))

	rows := readRows(t, r.Path)
	require.Len(t, rows, 2)
	assert.Equal(t, SheetHeaders, rows[0])
	assert.Equal(t, "Asha", rows[1][1])
}

func TestRecordConcurrentWriters(t *testing.T) {
	r := NewSheetRecorder(t.TempDir())

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := testEntry(fmt.Sprintf("Student %d", i), fmt.Sprintf("s%d@x.com", i), "Machine Learning")
			errs[i] = r.Record(entry)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "writer %d", i)
	}

	rows := readRows(t, r.Path)
	assert.Len(t, rows, writers+1)
	assert.Equal(t, SheetHeaders, rows[0])
}

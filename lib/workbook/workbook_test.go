package workbook

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"leave-tools-backend/models"
)

func newWorkbook(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "Rota.xlsx")
	require.NoError(t, CreateTemplate(path, "Leave", "Consultants"))
	return path
}

func TestCheckPath(t *testing.T) {
	dir := t.TempDir()
	require.True(t, errors.Is(CheckPath(filepath.Join(dir, "missing.xlsx")), ErrWorkbookNotFound))
	require.True(t, errors.Is(CheckPath(filepath.Join(dir, "rota.xls")), ErrNotXLSX))
	require.True(t, errors.Is(CheckPath(""), ErrWorkbookNotFound))
	require.NoError(t, CheckPath(newWorkbook(t)))
}

func TestBackup(t *testing.T) {
	path := newWorkbook(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	backup, err := Backup(path, now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(path), "Rota_backup_20240102_030405.xlsx"), backup)

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	copied, err := os.ReadFile(backup)
	require.NoError(t, err)
	require.Equal(t, orig, copied)

	second, err := Backup(path, now)
	require.NoError(t, err)
	require.NotEqual(t, backup, second)

	_, err = Backup(filepath.Join(t.TempDir(), "missing.xlsx"), now)
	require.Error(t, err)
}

func TestLeaveSheet(t *testing.T) {
	rec := models.LeaveRequest{
		RequestID: "R1",
		Name:      "Dr Smith",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		LeaveType: models.LeaveTypeAnnual,
		Approved:  false,
		CreatedAt: "2024-01-01T09:00:00Z",
		UpdatedAt: "2024-01-01T09:00:00Z",
	}

	t.Run(`put, save, reload`, func(t *testing.T) {
		path := newWorkbook(t)
		f, err := Open(path)
		require.NoError(t, err)
		s, err := LoadLeaveSheet(f, "Leave")
		require.NoError(t, err)
		row, appended, err := s.Put(rec)
		require.NoError(t, err)
		require.True(t, appended)
		require.Equal(t, 2, row)
		require.NoError(t, Save(f, path))
		Close(f)

		f, err = Open(path)
		require.NoError(t, err)
		defer Close(f)
		s, err = LoadLeaveSheet(f, "Leave")
		require.NoError(t, err)
		row, ok := s.RowOf("R1")
		require.True(t, ok)
		require.Equal(t, 2, row)
		require.Equal(t, []models.LeaveRequest{rec}, s.Records())

		value, err := f.GetCellValue("Leave", "E2")
		require.NoError(t, err)
		require.Equal(t, "FALSE", value)
	})

	t.Run(`clear keeps tombstone and appends after it`, func(t *testing.T) {
		path := newWorkbook(t)
		f, err := Open(path)
		require.NoError(t, err)
		defer Close(f)
		s, err := LoadLeaveSheet(f, "Leave")
		require.NoError(t, err)
		_, _, err = s.Put(rec)
		require.NoError(t, err)
		require.NoError(t, s.Clear(2))

		name, err := f.GetCellValue("Leave", "A2")
		require.NoError(t, err)
		require.Empty(t, name)
		id, err := f.GetCellValue("Leave", "G2")
		require.NoError(t, err)
		require.Equal(t, "R1", id)

		other := rec
		other.RequestID = "R2"
		row, appended, err := s.Put(other)
		require.NoError(t, err)
		require.True(t, appended)
		require.Equal(t, 3, row)
	})

	t.Run(`missing sheet`, func(t *testing.T) {
		f := excelize.NewFile()
		defer Close(f)
		_, err := LoadLeaveSheet(f, "Leave")
		require.True(t, errors.Is(err, ErrSheetNotFound))
	})

	t.Run(`legacy header is extended and hand entered rows parsed`, func(t *testing.T) {
		f := excelize.NewFile()
		defer Close(f)
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Name", "From", "To", "Type", "Approved"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Dr Jones", 45292, 45296, "annual", true, "", "L1"}))
		s, err := LoadLeaveSheet(f, "Sheet1")
		require.NoError(t, err)
		header, err := f.GetCellValue("Sheet1", "G1")
		require.NoError(t, err)
		require.Equal(t, "RequestID", header)
		from, err := f.GetCellValue("Sheet1", "B1")
		require.NoError(t, err)
		require.Equal(t, "From", from)

		list := s.Records()
		require.Len(t, list, 1)
		require.Equal(t, "2024-01-01", list[0].StartDate)
		require.Equal(t, "2024-01-05", list[0].EndDate)
		require.Equal(t, models.LeaveTypeAnnual, list[0].LeaveType)
		require.True(t, list[0].Approved)
	})

	t.Run(`rows without a request id get a row id`, func(t *testing.T) {
		f := excelize.NewFile()
		defer Close(f)
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Dr Jones", "2024-03-01", "2024-03-02", "Annual", true}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Dr Smith", "2024-03-05", "2024-03-06", "Study", true, "", "row-2"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"Dr Lee", "2024-03-07", "2024-03-08", "NOC", false}))
		s, err := LoadLeaveSheet(f, "Sheet1")
		require.NoError(t, err)

		// an explicit id wins over the row id of an id-less row
		row, ok := s.RowOf("row-2")
		require.True(t, ok)
		require.Equal(t, 3, row)
		require.Equal(t, map[string]int{"row-4": 4}, s.LegacyIDs())

		list := s.Records()
		require.Len(t, list, 2)
		require.Equal(t, "row-2", list[0].RequestID)
		require.Equal(t, "Dr Smith", list[0].Name)
		require.Equal(t, "row-4", list[1].RequestID)

		updated := list[1]
		updated.Notes = "swap"
		row, appended, err := s.Put(updated)
		require.NoError(t, err)
		require.False(t, appended)
		require.Equal(t, 4, row)
		require.Empty(t, s.LegacyIDs())
		id, err := f.GetCellValue("Sheet1", "G4")
		require.NoError(t, err)
		require.Equal(t, "row-4", id)
	})

	t.Run(`duplicate ids`, func(t *testing.T) {
		f := excelize.NewFile()
		defer Close(f)
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"A", "", "", "", "", "", "X"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"B", "", "", "", "", "", "X"}))
		s, err := LoadLeaveSheet(f, "Sheet1")
		require.NoError(t, err)
		row, _ := s.RowOf("X")
		require.Equal(t, 2, row)
		require.Equal(t, []int{3}, s.Duplicates())
	})
}

func TestReadConsultants(t *testing.T) {
	path := newWorkbook(t)
	f, err := Open(path)
	require.NoError(t, err)
	rows := [][]interface{}{
		{"Dr B", false, 1, true, true, true},
		{"Dr A", true, 1, true, true, 1},
		{"Dr C", true, 1, true, true, false},
		{"Dr B", false, 1, true, true, true},
		{"Dr D", false, 1, true, true, "Y"},
		{"Dr E", false, 1, true, true, "Active"},
		{"Dr F", false, 1, true, true, "x"},
		{"Dr G", false, 1, true, true, "0"},
		{"Dr H", false, 1, true, true, "FALSE"},
		{"Dr I", false, 1, true, true, ""},
		{"", false, 1, true, true, true},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, f.SetSheetRow("Consultants", cell, &r))
	}
	require.NoError(t, Save(f, path))
	Close(f)

	names, err := ReadConsultants(path, "Consultants")
	require.NoError(t, err)
	require.Equal(t, []string{"Dr A", "Dr B", "Dr D", "Dr E", "Dr F"}, names)

	names, err = ReadConsultants(path, "Missing")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestIsTruthy(t *testing.T) {
	for _, value := range []string{"1", "TRUE", "true", "Y", "yes", "Active", "x", "2.5"} {
		require.True(t, isTruthy(value), value)
	}
	for _, value := range []string{"", "  ", "0", "0.0", "FALSE", "false"} {
		require.False(t, isTruthy(value), value)
	}
}

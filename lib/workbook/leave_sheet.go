package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"leave-tools-backend/models"
)

// Leave sheet columns. A-E is the layout the rota solver reads.
const (
	ColName = iota + 1
	ColStartDate
	ColEndDate
	ColLeaveType
	ColApproved
	ColNotes
	ColRequestID
	ColCreatedAt
	ColUpdatedAt
)

var Headers = []string{"Name", "StartDate", "EndDate", "LeaveType", "Approved", "Notes", "RequestID", "CreatedAt", "UpdatedAt"}

const firstDataRow = 2

// LeaveSheet indexes the rows of the leave sheet by request id.
type LeaveSheet struct {
	f          *excelize.File
	sheet      string
	rows       [][]string
	rowByID    map[string]int
	legacyByID map[string]int
	duplicates []int
	lastRow    int
}

func LoadLeaveSheet(f *excelize.File, sheet string) (*LeaveSheet, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "workbook has no %q sheet", sheet)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "unable to read leave sheet")
	}
	s := &LeaveSheet{
		f:       f,
		sheet:   sheet,
		rows:    rows,
		rowByID:    map[string]int{},
		legacyByID: map[string]int{},
		lastRow:    len(rows),
	}
	if s.lastRow < 1 {
		s.lastRow = 1
	}
	for idx := firstDataRow - 1; idx < len(rows); idx++ {
		id := strings.TrimSpace(cellAt(rows[idx], ColRequestID))
		if id == "" {
			continue
		}
		if _, exists := s.rowByID[id]; exists {
			s.duplicates = append(s.duplicates, idx+1)
			continue
		}
		s.rowByID[id] = idx + 1
	}
	for idx := firstDataRow - 1; idx < len(rows); idx++ {
		if strings.TrimSpace(cellAt(rows[idx], ColRequestID)) != "" || strings.TrimSpace(cellAt(rows[idx], ColName)) == "" {
			continue
		}
		id := LegacyID(idx + 1)
		if _, taken := s.rowByID[id]; taken {
			continue
		}
		s.legacyByID[id] = idx + 1
	}
	if err := s.ensureHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LeaveSheet) ensureHeader() error {
	var header []string
	if len(s.rows) > 0 {
		header = s.rows[0]
	}
	for i, title := range Headers {
		if strings.TrimSpace(cellAt(header, i+1)) != "" {
			continue
		}
		if err := s.set(i+1, 1, title); err != nil {
			return err
		}
	}
	return nil
}

// LegacyID names a row that has data but no request id, such as rows typed in by hand.
func LegacyID(row int) string {
	return fmt.Sprintf("row-%d", row)
}

// RowOf returns the sheet row holding id, including rows known only by LegacyID.
func (s *LeaveSheet) RowOf(id string) (int, bool) {
	if row, ok := s.rowByID[id]; ok {
		return row, true
	}
	row, ok := s.legacyByID[id]
	return row, ok
}

// LegacyIDs returns the rows without a request id that no Put has claimed yet.
func (s *LeaveSheet) LegacyIDs() map[string]int {
	result := make(map[string]int, len(s.legacyByID))
	for id, row := range s.legacyByID {
		result[id] = row
	}
	return result
}

// IDs returns the request id to row mapping found when the sheet was loaded plus rows added since.
func (s *LeaveSheet) IDs() map[string]int {
	result := make(map[string]int, len(s.rowByID))
	for id, row := range s.rowByID {
		result[id] = row
	}
	return result
}

// Duplicates lists rows repeating a request id already seen higher up.
func (s *LeaveSheet) Duplicates() []int {
	return s.duplicates
}

// Put writes rec into its existing row or appends it after the last used row.
// Appended rows never reuse blank rows so existing row numbers stay stable.
// Writing a legacy row stores its LegacyID in the request id column.
func (s *LeaveSheet) Put(rec models.LeaveRequest) (row int, appended bool, err error) {
	row, ok := s.RowOf(rec.RequestID)
	if !ok {
		s.lastRow++
		row = s.lastRow
		appended = true
	}
	delete(s.legacyByID, rec.RequestID)
	s.rowByID[rec.RequestID] = row
	values := []interface{}{
		rec.Name,
		rec.StartDate,
		rec.EndDate,
		string(rec.LeaveType),
		rec.Approved,
		rec.Notes,
		rec.RequestID,
		rec.CreatedAt,
		rec.UpdatedAt,
	}
	for i, value := range values {
		if err := s.set(i+1, row, value); err != nil {
			return row, appended, err
		}
	}
	return row, appended, nil
}

// Clear blanks the row's cells in place and keeps the request id as a tombstone,
// so the row is neither shifted nor reused by later appends.
func (s *LeaveSheet) Clear(row int) error {
	for col := ColName; col <= ColUpdatedAt; col++ {
		if col == ColRequestID {
			continue
		}
		if err := s.set(col, row, nil); err != nil {
			return err
		}
	}
	return nil
}

// Remove clears the row holding id and writes id into it as the tombstone,
// so rows that had no request id are not reused by later appends either.
func (s *LeaveSheet) Remove(id string) error {
	row, ok := s.RowOf(id)
	if !ok {
		return errors.Errorf("no row holds request %s", id)
	}
	if err := s.Clear(row); err != nil {
		return err
	}
	delete(s.legacyByID, id)
	s.rowByID[id] = row
	return s.set(ColRequestID, row, id)
}

// ClearAll blanks every cell of the row, request id included.
func (s *LeaveSheet) ClearAll(row int) error {
	if err := s.Clear(row); err != nil {
		return err
	}
	return s.set(ColRequestID, row, nil)
}

// IsBlank reports whether the data columns of row were empty when loaded.
func (s *LeaveSheet) IsBlank(row int) bool {
	if row-1 >= len(s.rows) {
		return true
	}
	cells := s.rows[row-1]
	for col := ColName; col <= ColUpdatedAt; col++ {
		if col == ColRequestID {
			continue
		}
		if strings.TrimSpace(cellAt(cells, col)) != "" {
			return false
		}
	}
	return true
}

// Records parses the named rows as loaded. Rows without a request id get their LegacyID.
func (s *LeaveSheet) Records() []models.LeaveRequest {
	result := make([]models.LeaveRequest, 0, len(s.rowByID)+len(s.legacyByID))
	for idx := firstDataRow - 1; idx < len(s.rows); idx++ {
		cells := s.rows[idx]
		name := strings.TrimSpace(cellAt(cells, ColName))
		if name == "" {
			continue
		}
		id := strings.TrimSpace(cellAt(cells, ColRequestID))
		if id == "" {
			id = LegacyID(idx + 1)
			if s.legacyByID[id] != idx+1 {
				continue
			}
		} else if s.rowByID[id] != idx+1 {
			continue
		}
		result = append(result, models.LeaveRequest{
			RequestID: id,
			Name:      name,
			StartDate: parseDateCell(cellAt(cells, ColStartDate)),
			EndDate:   parseDateCell(cellAt(cells, ColEndDate)),
			LeaveType: models.NormalizeLeaveType(cellAt(cells, ColLeaveType)),
			Approved:  parseBool(cellAt(cells, ColApproved)),
			Notes:     cellAt(cells, ColNotes),
			CreatedAt: cellAt(cells, ColCreatedAt),
			UpdatedAt: cellAt(cells, ColUpdatedAt),
		})
	}
	return result
}

func (s *LeaveSheet) set(col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.f.SetCellValue(s.sheet, cell, value); err != nil {
		return errors.Wrapf(err, "unable to write cell %s", cell)
	}
	return nil
}

func cellAt(cells []string, col int) string {
	if col-1 < len(cells) {
		return cells[col-1]
	}
	return ""
}

var dateLayouts = []string{models.DateLayout, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "02/01/2006"}

// parseDateCell accepts text dates and raw Excel serial numbers.
func parseDateCell(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(models.DateLayout)
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(models.DateLayout)
		}
	}
	return value
}

package workbook

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	consultantNameCol   = 1 // A
	consultantActiveCol = 6 // F
)

// ReadConsultants returns the sorted distinct names of active consultants.
// A workbook without the roster sheet yields an empty list.
func ReadConsultants(path, sheet string) ([]string, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer Close(f)
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return []string{}, nil
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "unable to read consultants sheet")
	}
	seen := map[string]bool{}
	result := []string{}
	for idx := firstDataRow - 1; idx < len(rows); idx++ {
		name := strings.TrimSpace(cellAt(rows[idx], consultantNameCol))
		if name == "" || seen[name] || !isTruthy(cellAt(rows[idx], consultantActiveCol)) {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

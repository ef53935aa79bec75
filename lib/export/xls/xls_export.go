package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"leave-tools-backend/models"
)

type Provider interface {
	ExportLeaveList(list []models.LeaveRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var leaveHeaders = []string{"Consultant", "Date from", "Date to", "Days", "Leave type", "Approved", "Notes", "Request ID", "Updated"}

func (i impl) ExportLeaveList(list []models.LeaveRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("unable to close export file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, leaveHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeLeaveData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "unable to write xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, "Leave requests"); err != nil {
		return nil, errors.Wrap(err, "unable to name xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeLeaveData(f *excelize.File, sheet string, list []models.LeaveRequest, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(leaveHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.StartDate,
			item.EndDate,
			days(item),
			string(item.LeaveType),
			yesNo(item.Approved),
			item.Notes,
			item.RequestID,
			item.UpdatedAt,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// days counts calendar days, both ends included.
func days(item models.LeaveRequest) interface{} {
	start, err := item.Start()
	if err != nil {
		return ""
	}
	end, err := item.End()
	if err != nil {
		return ""
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

package workbook

import (
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var consultantHeaders = []string{"Name", "Cardiac", "WTE", "EligibleA", "EligibleD", "Active"}

// CreateTemplate writes an empty rota workbook with the leave and roster sheets.
// It refuses to overwrite an existing file.
func CreateTemplate(path, leaveSheet, consultantsSheet string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("%s already exists", path)
	}
	f := excelize.NewFile()
	defer Close(f)
	if err := f.SetSheetName("Sheet1", leaveSheet); err != nil {
		return errors.Wrap(err, "unable to name leave sheet")
	}
	if _, err := f.NewSheet(consultantsSheet); err != nil {
		return errors.Wrap(err, "unable to create consultants sheet")
	}
	if err := f.SetSheetRow(leaveSheet, "A1", &Headers); err != nil {
		return errors.Wrap(err, "unable to write leave header")
	}
	if err := f.SetSheetRow(consultantsSheet, "A1", &consultantHeaders); err != nil {
		return errors.Wrap(err, "unable to write consultants header")
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "unable to save workbook")
	}
	return nil
}

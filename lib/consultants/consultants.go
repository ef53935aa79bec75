package consultants

import (
	"leave-tools-backend/lib/workbook"
)

type Provider interface {
	List() ([]string, error)
}

var Instance Provider

func NewHandler(workbookPath, sheet string) {
	Instance = impl{
		workbookPath: workbookPath,
		sheet:        sheet,
	}
}

type impl struct {
	workbookPath string
	sheet        string
}

// List returns active consultant names, or an empty list when no workbook is configured.
func (i impl) List() ([]string, error) {
	if i.workbookPath == "" {
		return []string{}, nil
	}
	return workbook.ReadConsultants(i.workbookPath, i.sheet)
}

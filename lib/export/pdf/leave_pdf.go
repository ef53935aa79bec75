package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"leave-tools-backend/models"
)

type Provider interface {
	ExportLeaveList(list []models.LeaveRequest, generatedAt time.Time) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

type column struct {
	title string
	width float64
	value func(rec models.LeaveRequest) string
}

var columns = []column{
	{"Consultant", 60, func(r models.LeaveRequest) string { return r.Name }},
	{"Date from", 28, func(r models.LeaveRequest) string { return r.StartDate }},
	{"Date to", 28, func(r models.LeaveRequest) string { return r.EndDate }},
	{"Type", 22, func(r models.LeaveRequest) string { return string(r.LeaveType) }},
	{"Approved", 22, func(r models.LeaveRequest) string {
		if r.Approved {
			return "Yes"
		}
		return "No"
	}},
	{"Notes", 117, func(r models.LeaveRequest) string { return r.Notes }},
}

// ExportLeaveList renders the requests as a landscape A4 table.
func (i impl) ExportLeaveList(list []models.LeaveRequest, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportLeaveList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Leave requests", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Generated %s - page %d", generatedAt.Format("2006-01-02 15:04"), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Leave requests", "", 1, "L", false, 0, "")

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(221, 235, 247)
		for _, col := range columns {
			pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, rec := range list {
		if pdf.GetY()+7 > pageHeight-bottom-12 {
			pdf.AddPage()
			header()
		}
		for _, col := range columns {
			pdf.CellFormat(col.width, 7, truncate(pdf, tr(col.value(rec)), col.width-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(list) == 0 {
		pdf.CellFormat(0, 8, "No requests", "", 1, "L", false, 0, "")
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "unable to render pdf")
	}
	return buf.Bytes(), nil
}

func truncate(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

package work

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReportRenderer builds the daily work report document.
//
//go:generate mockgen -source=work_report_pdf.go -destination=mock/work_report_pdf_mock.go -package=mock
type ReportRenderer interface {
	RenderDaily(date time.Time, items []Work) ([]byte, error)
}

type pdfReportRenderer struct {
	companyName string
}

func NewPDFReportRenderer(companyName string) ReportRenderer {
	return &pdfReportRenderer{companyName: companyName}
}

func (r *pdfReportRenderer) RenderDaily(date time.Time, items []Work) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, r.companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Daily Work Report - "+date.Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{55, 70, 80, 30, 42}
	headers := []string{"Employee", "Title", "Report", "Status", "Submitted"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 8, hd, "LTRB", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(items) == 0 {
		pdf.CellFormat(sum(widths), 8, "No work activity recorded for this day", "LTRB", 1, "C", false, 0, "")
	}
	for _, w := range items {
		name := ""
		if w.Employee != nil {
			name = w.Employee.FirstName + " " + w.Employee.LastName
		}
		submitted := ""
		if w.SubmittedDate != nil {
			submitted = w.SubmittedDate.Format("2006-01-02")
		}
		cells := []string{name, w.Title, truncate(w.Report, 60), w.Status, submitted}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 8, cell, "LTRB", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sum(v []float64) float64 {
	var t float64
	for _, x := range v {
		t += x
	}
	return t
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

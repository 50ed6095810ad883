package payslip

import (
	"bytes"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Renderer builds the payslip document for one generated payslip.
//
//go:generate mockgen -source=payslip_pdf.go -destination=mock/payslip_pdf_mock.go -package=mock
type Renderer interface {
	Render(slip *Payslip, empl *PayslipEmployee) ([]byte, error)
}

type pdfRenderer struct {
	companyName string
	logoPath    string
}

func NewPDFRenderer(companyName, logoPath string) Renderer {
	return &pdfRenderer{companyName: companyName, logoPath: logoPath}
}

const (
	labelColWidth = 95.0
	valueColWidth = 95.0
	rowHeight     = 7.0
)

// tableRow is one label/value pair inside a bordered block.
type tableRow struct {
	label string
	value string
}

func (r *pdfRenderer) Render(slip *Payslip, empl *PayslipEmployee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	r.writeHeader(pdf, slip.Period)

	employeeRows := []tableRow{
		{"Employee Name", empl.FirstName + " " + empl.LastName},
		{"Employee Code", empl.CardNumber},
		{"Location", slip.Location},
		{"Date of Joining", empl.JoiningDate.Format("02-01-2006")},
		{"Days Paid", strconv.Itoa(empl.DaysPresent)},
		{"Bank Name", empl.BankName},
		{"Bank Account No", empl.BankAccount},
		{"PF Number", empl.PfNumber},
		{"EPS Number", empl.EpsNumber},
		{"PAN Number", empl.PanNumber},
		{"UAN Number", empl.UanNumber},
		{"ESI Number", empl.EsiNumber},
	}
	r.writeBlock(pdf, "Employee Details", employeeRows)
	pdf.Ln(4)

	earningsRows := []tableRow{
		{"Basic Salary", slip.Basic.StringFixed(2)},
		{"House Rent Allowance", slip.Hra.StringFixed(2)},
		{"Flexible Pay", slip.Flexi.StringFixed(2)},
		{"Gross Earnings", slip.Gross.StringFixed(2)},
		{"Provident Fund", slip.PfDeduction.StringFixed(2)},
		{"Professional Tax", slip.ProfessionalTax.StringFixed(2)},
		{"Total Deductions", slip.TotalDeductions.StringFixed(2)},
		{"Net Pay", slip.NetPay.StringFixed(2)},
	}
	r.writeBlock(pdf, "Earnings & Deductions", earningsRows)
	pdf.Ln(4)

	taxRows := []tableRow{
		{"Gross Salary", slip.Gross.StringFixed(2)},
		{"Balance", slip.Balance.StringFixed(2)},
		{"Aggregate Deduction", slip.AggDeduction.StringFixed(2)},
		{"Income Under Head Salary", slip.IncomeUnderHead.StringFixed(2)},
		{"Tax Credit", slip.TaxCredit.StringFixed(2)},
	}
	r.writeBlock(pdf, "Tax & Perks", taxRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeHeader draws the company logo when the asset exists, otherwise
// falls back to the company name as a text label.
func (r *pdfRenderer) writeHeader(pdf *gofpdf.Fpdf, period string) {
	logoDrawn := false
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			pdf.ImageOptions(r.logoPath, 10, 10, 40, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(18)
			logoDrawn = true
		}
	}
	if !logoDrawn {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.CellFormat(0, 10, r.companyName, "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Payslip for "+period, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

// writeBlock renders a two-column table where only the outer edge of
// each column is drawn, so the block reads as a single outline rather
// than a full grid.
func (r *pdfRenderer) writeBlock(pdf *gofpdf.Fpdf, title string, rows []tableRow) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelColWidth+valueColWidth, rowHeight, title, "LTRB", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		border := "LR"
		if i == len(rows)-1 {
			border = "LRB"
		}
		pdf.CellFormat(labelColWidth, rowHeight, row.label, border, 0, "L", false, 0, "")
		pdf.CellFormat(valueColWidth, rowHeight, row.value, border, 1, "R", false, 0, "")
	}
}

package payslip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-hrledger/internal/events"

	"github.com/jung-kurt/gofpdf"
)

// Renderer writes payslip PDFs for paid salary events.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	if outputDir == "" {
		outputDir = "payslips"
	}
	return &Renderer{outputDir: outputDir}
}

// Render produces the PDF for one paid salary and returns the file
// path. Output files are keyed by salary id, so rendering the same
// event twice overwrites rather than duplicates.
func (r *Renderer) Render(evt events.SalaryPaidEvent) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create payslip dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "PAYSLIP", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s %d", time.Month(evt.Month), evt.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Employee", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	r.row(pdf, "Name", evt.EmployeeName)
	r.row(pdf, "Email", evt.EmployeeEmail)
	r.row(pdf, "Employee ID", evt.EmployeeID)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Payment", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	r.row(pdf, "Gross salary", fmt.Sprintf("%.2f", evt.GrossSalary))
	r.row(pdf, "Total deductions", fmt.Sprintf("%.2f", evt.TotalDeductions))

	pdf.SetFont("Arial", "B", 11)
	r.row(pdf, "Net salary", fmt.Sprintf("%.2f", evt.NetSalary))
	pdf.SetFont("Arial", "", 11)

	if evt.CreditDate != nil {
		r.row(pdf, "Credit date", evt.CreditDate.Format("2006-01-02"))
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().UTC().Format(time.RFC3339)), "", 1, "L", false, 0, "")

	path := filepath.Join(r.outputDir, fmt.Sprintf("payslip_%s_%02d_%d.pdf", evt.SalaryID, evt.Month, evt.Year))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write payslip pdf: %w", err)
	}
	return path, nil
}

func (r *Renderer) row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

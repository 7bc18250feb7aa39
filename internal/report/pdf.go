package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer draws a report directly to PDF, with no LaTeX toolchain
// involved.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the report as a PDF document to w.
func (r *PDFRenderer) Render(data Data, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pr, pg, pb := hexToRGB(data.Company.PrimaryColor)

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(pr, pg, pb)
	pdf.CellFormat(0, 9, data.Company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s", data.Company.Street, data.Company.City), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s", data.Company.Phone, data.Company.Email), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Time Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Employee: %s (%s)", data.Employee, data.StaffNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s", data.PeriodLabel), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Day table
	widths := []float64{28, 22, 22, 24, 22, 26, 20}
	headers := []string{"Date", "Start", "End", "Minutes", "Break", "Vacation", "Sick"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(pr, pg, pb)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	totalMinutes := 0
	for _, row := range data.Rows {
		totalMinutes += row.TotalMinutes
		cells := []string{
			row.Date.Format("02.01.2006"),
			row.StartTime,
			row.EndTime,
			strconv.Itoa(row.TotalMinutes),
			strconv.Itoa(row.BreakMinutes),
			yesNo(row.IsVacation),
			yesNo(row.IsSick),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		if len(row.Flags) > 0 {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 6, " !", "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 10)
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[3], 7, strconv.Itoa(totalMinutes), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[4], 7, strconv.Itoa(data.TotalBreakMinutes()), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[5], 7, fmt.Sprintf("%d days", data.Summary.VacationDays), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[6], 7, fmt.Sprintf("%d d", data.Summary.SickDays), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Summary block
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	summaryLine(pdf, "Total Working Hours", fmt.Sprintf("%.2f hours", data.TotalHours()))
	summaryLine(pdf, "Overtime", fmt.Sprintf("%.2f hours", float64(data.Summary.OvertimeMinutes)/60))
	summaryLine(pdf, "Vacation Days Used", fmt.Sprintf("%d days", data.Summary.VacationDays))
	summaryLine(pdf, "Sick Leave Taken", fmt.Sprintf("%d days", data.Summary.SickDays))
	summaryLine(pdf, "Compliance Violations", fmt.Sprintf("%d days", data.Summary.ComplianceViolationDays))
	if data.VacationDaysRemaining > 0 || data.VacationDaysUsedYTD > 0 {
		summaryLine(pdf, "Vacation Remaining (YTD)", fmt.Sprintf("%d days", data.VacationDaysRemaining))
		summaryLine(pdf, "Sick Days Remaining (YTD)", fmt.Sprintf("%d days", data.SickDaysRemaining))
	}
	if data.TotalPay > 0 {
		summaryLine(pdf, "Regular Pay", fmt.Sprintf("%.2f", data.RegularPay))
		summaryLine(pdf, "Overtime Pay (1.5x)", fmt.Sprintf("%.2f", data.OvertimePay))
		summaryLine(pdf, "Total Pay", fmt.Sprintf("%.2f", data.TotalPay))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func summaryLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// hexToRGB parses an "RRGGBB" color, falling back to black on bad input.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

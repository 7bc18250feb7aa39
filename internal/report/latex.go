package report

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed templates/time_report.tex
var defaultTemplate string

// LaTeXEngine substitutes report data into a LaTeX template. The template
// carries numbered marker comments (% ___DATA0___ through % ___DATA5___);
// each marker line is replaced by a generated block:
//
//	DATA0  company identity commands
//	DATA1  employee identity and period commands
//	DATA2  company color definitions
//	DATA3  day table rows
//	DATA4  table total row
//	DATA5  summary statistics lines
type LaTeXEngine struct {
	template string
}

// NewLaTeXEngine returns an engine using the embedded default template.
func NewLaTeXEngine() *LaTeXEngine {
	return &LaTeXEngine{template: defaultTemplate}
}

// NewLaTeXEngineFromFile returns an engine using a custom template file.
func NewLaTeXEngineFromFile(path string) (*LaTeXEngine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return &LaTeXEngine{template: string(data)}, nil
}

// Render produces the complete LaTeX source for the report.
func (e *LaTeXEngine) Render(data Data) (string, error) {
	blocks := map[string]string{
		"___DATA0___": companyBlock(data),
		"___DATA1___": employeeBlock(data),
		"___DATA2___": colorBlock(data),
		"___DATA3___": dayRowsBlock(data),
		"___DATA4___": totalRowBlock(data),
		"___DATA5___": summaryBlock(data),
	}

	out := e.template
	for marker, block := range blocks {
		line := "% " + marker
		if !strings.Contains(out, line) {
			return "", fmt.Errorf("template is missing marker %s", marker)
		}
		out = strings.ReplaceAll(out, line, block)
	}
	return out, nil
}

func companyBlock(data Data) string {
	c := data.Company
	var b strings.Builder
	fmt.Fprintf(&b, "\\newcommand{\\companyname}{%s}\n", escapeLaTeX(c.Name))
	fmt.Fprintf(&b, "\\newcommand{\\companystreet}{%s}\n", escapeLaTeX(c.Street))
	fmt.Fprintf(&b, "\\newcommand{\\companycity}{%s}\n", escapeLaTeX(c.City))
	fmt.Fprintf(&b, "\\newcommand{\\companyphone}{%s}\n", escapeLaTeX(c.Phone))
	fmt.Fprintf(&b, "\\newcommand{\\companyemail}{%s}", escapeLaTeX(c.Email))
	return b.String()
}

func employeeBlock(data Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\newcommand{\\employeename}{%s}\n", escapeLaTeX(data.Employee))
	fmt.Fprintf(&b, "\\newcommand{\\employeenumber}{%s}\n", escapeLaTeX(data.StaffNumber))
	fmt.Fprintf(&b, "\\newcommand{\\reportperiod}{%s}", escapeLaTeX(data.PeriodLabel))
	return b.String()
}

func colorBlock(data Data) string {
	c := data.Company
	var b strings.Builder
	fmt.Fprintf(&b, "\\definecolor{primary}{HTML}{%s}\n", c.PrimaryColor)
	fmt.Fprintf(&b, "\\definecolor{secondary}{HTML}{%s}\n", c.SecondaryColor)
	fmt.Fprintf(&b, "\\definecolor{tertiary}{HTML}{%s}", c.TertiaryColor)
	return b.String()
}

func dayRowsBlock(data Data) string {
	rows := make([]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		rows = append(rows, fmt.Sprintf("    %s & %s & %s & %d & %d & %s & %s \\\\",
			row.Date.Format("02.01.2006"),
			row.StartTime,
			row.EndTime,
			row.TotalMinutes,
			row.BreakMinutes,
			yesNo(row.IsVacation),
			yesNo(row.IsSick),
		))
	}
	return strings.Join(rows, "\n")
}

func totalRowBlock(data Data) string {
	totalMinutes := 0
	vacation, sick := 0, 0
	for _, row := range data.Rows {
		totalMinutes += row.TotalMinutes
		if row.IsVacation {
			vacation++
		}
		if row.IsSick {
			sick++
		}
	}
	return fmt.Sprintf("    \\multicolumn{3}{|l|}{\\textbf{Total}} & %d & %d & %d days & %d days \\\\",
		totalMinutes, data.TotalBreakMinutes(), vacation, sick)
}

func summaryBlock(data Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "    \\textbf{Total Working Hours:} & %.2f hours \\\\\n", data.TotalHours())
	fmt.Fprintf(&b, "    \\textbf{Overtime:} & %.2f hours \\\\\n", float64(data.Summary.OvertimeMinutes)/60)
	fmt.Fprintf(&b, "    \\textbf{Vacation Days Used:} & %d days \\\\\n", data.Summary.VacationDays)
	fmt.Fprintf(&b, "    \\textbf{Sick Leave Taken:} & %d days \\\\\n", data.Summary.SickDays)
	fmt.Fprintf(&b, "    \\textbf{Compliance Violations:} & %d days \\\\[0.5cm]", data.Summary.ComplianceViolationDays)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

var latexEscaper = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

// escapeLaTeX escapes the characters LaTeX treats specially in free text
// fields such as names and notes.
func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
)

// Format selects the export encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a query parameter onto a Format. Empty defaults to
// xlsx, matching the dashboard's download button.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", v)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// FileName builds the attachment name, e.g. "employees_2024-05-01.xlsx".
func (f Format) FileName(prefix string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, at.Format("2006-01-02"), string(f))
}

// ExportService renders filtered employee and attendance listings into
// downloadable documents.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var employeeHeader = []string{
	"Full Name", "Iqama No", "Project", "Location", "Job Title",
	"Payment Type", "Rate of Payment", "Sponsorship", "Status",
}

var attendanceHeader = []string{
	"Employee", "Iqama No", "Date", "Status",
	"Start Time", "End Time", "Overtime", "Note",
}

// WriteEmployees renders the employee listing in the given format.
func (s *ExportService) WriteEmployees(w io.Writer, format Format, employees []employee.EmployeeResponse) error {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.FullName, e.IqamaNo, e.Project, e.Location, e.JobTitle,
			e.PaymentType, e.RateOfPayment, e.Sponsorship, e.Status,
		})
	}
	return s.write(w, format, "Employees", employeeHeader, rows)
}

// WriteAttendance renders the attendance listing in the given format.
func (s *ExportService) WriteAttendance(w io.Writer, format Format, records []attendance.AttendanceResponse) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.FullName, r.IqamaNo, r.Date, r.StatusLabel,
			optCell(r.StartTime), optCell(r.EndTime), optCell(r.Overtime), optCell(r.Note),
		})
	}
	return s.write(w, format, "Attendance", attendanceHeader, rows)
}

func (s *ExportService) write(w io.Writer, format Format, title string, header []string, rows [][]string) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, header, rows)
	case FormatPDF:
		return writePDF(w, title, header, rows)
	default:
		return writeXLSX(w, title, header, rows)
	}
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, title string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", title); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(title, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(title, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(title, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func writePDF(w io.Writer, title string, header []string, rows [][]string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(header))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for _, name := range header {
		pdf.CellFormat(colWidth, 8, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for _, value := range row {
			pdf.CellFormat(colWidth, 7, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func optCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

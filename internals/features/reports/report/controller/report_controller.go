package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"lecats_backend/internals/features/reports/report/dto"
	"lecats_backend/internals/features/reports/report/service"
	helper "lecats_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

var validate = validator.New()

func (ctl *ReportController) parseRequest(c *fiber.Ctx) (uuid.UUID, time.Time, time.Time, error) {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	start, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	end, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return uuid.Nil, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	deptID, _ := uuid.Parse(req.DepartmentID)
	return deptID, start, end, nil
}

func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	deptID, start, end, err := ctl.parseRequest(c)
	if err != nil {
		return err
	}

	report, err := service.Generate(ctl.DB, deptID, start, end)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// GeneratePDF merender laporan yang sama sebagai PDF attachment.
func (ctl *ReportController) GeneratePDF(c *fiber.Ctx) error {
	deptID, start, end, err := ctl.parseRequest(c)
	if err != nil {
		return err
	}

	report, err := service.Generate(ctl.DB, deptID, start, end)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderReportPDF(report, &buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render PDF")
	}

	deptSlug := strings.ReplaceAll(strings.ToLower(report.Summary.DepartmentName), " ", "_")
	filename := fmt.Sprintf("attendance_report_%s_%s.pdf", deptSlug, time.Now().UTC().Format("2006-01-02"))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

func renderReportPDF(report *dto.AttendanceReport, buf *bytes.Buffer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Lecturer Attendance Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Department: %s", report.Summary.DepartmentName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s", report.Summary.Period), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Classes Recorded: %d", report.Summary.TotalClassesRecorded), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Overall Attendance Rate: %.2f%%", report.Summary.OverallAttendanceRate), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	widths := []float64{80, 25, 25, 25, 35}
	headers := []string{"Lecturer", "Total", "Attended", "Missed", "Rate (%)"}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range report.Breakdown {
		pdf.CellFormat(widths[0], 7, row.LecturerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", row.TotalClasses), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", row.ClassesAttended), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", row.ClassesMissed), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", row.AttendanceRate), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if len(report.Breakdown) == 0 {
		pdf.CellFormat(190, 7, "No verified attendance in this period", "1", 1, "C", false, 0, "")
	}

	return pdf.Output(buf)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"foodbridge/backend/internal/model"
	"foodbridge/backend/internal/repository"
)

// ── export errors ──

var (
	ErrExportNoLogs       = errors.New("no verified hours in the requested period")
	ErrExportGenerateFail = errors.New("failed to generate excel file")
)

// ExportService admin reporting.
//
// Reports return a bytes.Buffer plus a suggested filename; the handler sets
// the HTTP headers and streams the buffer.
type ExportService interface {
	// ExportHoursReport builds an .xlsx of verified hours between from and
	// to (inclusive), with a per-volunteer summary sheet and a detail sheet.
	ExportHoursReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportHoursReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	// 1. fetch verified logs in range
	logs, err := s.repo.HourLog.ListVerifiedBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("list verified hours failed", zap.Error(err))
		return nil, "", err
	}
	if len(logs) == 0 {
		return nil, "", ErrExportNoLogs
	}

	// 2. resolve volunteer names once per volunteer
	names := make(map[string]string)
	for _, log := range logs {
		if _, ok := names[log.VolunteerID]; ok {
			continue
		}
		user, err := s.repo.User.GetByID(ctx, log.VolunteerID)
		if err != nil {
			s.logger.Warn("lookup volunteer failed", zap.String("volunteer_id", log.VolunteerID), zap.Error(err))
			names[log.VolunteerID] = log.VolunteerID
			continue
		}
		names[log.VolunteerID] = user.Name
	}

	// 3. aggregate per volunteer
	type summaryRow struct {
		name    string
		entries int
		total   float64
	}
	byVolunteer := make(map[string]*summaryRow)
	for _, log := range logs {
		row, ok := byVolunteer[log.VolunteerID]
		if !ok {
			row = &summaryRow{name: names[log.VolunteerID]}
			byVolunteer[log.VolunteerID] = row
		}
		row.entries++
		row.total += log.Hours
	}

	var summary []summaryRow
	for _, row := range byVolunteer {
		summary = append(summary, *row)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].total != summary[j].total {
			return summary[i].total > summary[j].total
		}
		return summary[i].name < summary[j].name
	})

	// 4. build the workbook
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// summary sheet
	summarySheet := "Summary"
	idx, _ := f.NewSheet(summarySheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(summarySheet, "A", "A", 28)
	f.SetColWidth(summarySheet, "B", "C", 14)

	period := fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	f.SetCellValue(summarySheet, "A1", fmt.Sprintf("Volunteer Hours %s", period))
	f.MergeCell(summarySheet, "A1", "C1")
	f.SetCellStyle(summarySheet, "A1", "A1", headerStyle)

	f.SetCellValue(summarySheet, cell("A", 2), "Volunteer")
	f.SetCellValue(summarySheet, cell("B", 2), "Entries")
	f.SetCellValue(summarySheet, cell("C", 2), "Total Hours")

	row := 3
	var grandTotal float64
	for _, sr := range summary {
		f.SetCellValue(summarySheet, cell("A", row), sr.name)
		f.SetCellValue(summarySheet, cell("B", row), sr.entries)
		f.SetCellValue(summarySheet, cell("C", row), sr.total)
		grandTotal += sr.total
		row++
	}
	f.SetCellValue(summarySheet, cell("A", row), "Total")
	f.SetCellValue(summarySheet, cell("C", row), grandTotal)

	// detail sheet
	detailSheet := "Details"
	f.NewSheet(detailSheet)
	f.SetColWidth(detailSheet, "A", "A", 28)
	f.SetColWidth(detailSheet, "B", "C", 14)
	f.SetColWidth(detailSheet, "D", "D", 50)

	f.SetCellValue(detailSheet, cell("A", 1), "Volunteer")
	f.SetCellValue(detailSheet, cell("B", 1), "Date")
	f.SetCellValue(detailSheet, cell("C", 1), "Hours")
	f.SetCellValue(detailSheet, cell("D", 1), "Description")

	row = 2
	for _, log := range logs {
		writeDetailRow(f, detailSheet, row, names[log.VolunteerID], &log)
		row++
	}

	// 5. write to buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("volunteer_hours_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return buf, filename, nil
}

func writeDetailRow(f *excelize.File, sheet string, row int, name string, log *model.HourLog) {
	f.SetCellValue(sheet, cell("A", row), name)
	f.SetCellValue(sheet, cell("B", row), log.LogDate.Format("2006-01-02"))
	f.SetCellValue(sheet, cell("C", row), log.Hours)
	f.SetCellValue(sheet, cell("D", row), log.Description)
}

// ── helpers ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

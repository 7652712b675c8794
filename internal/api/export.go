package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"roombook/internal/metrics"

	"github.com/xuri/excelize/v2"
)

// handleBookingsExport writes the full booking list into an Excel file under
// the configured export directory and serves it to the caller.
func (s *HTTPServer) handleBookingsExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("exports")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.bookings.ListBookings(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	if err := os.MkdirAll(s.cfg.Exports.Path, 0o755); err != nil {
		s.writeDomainError(w, fmt.Errorf("error creating export directory: %w", err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		s.writeDomainError(w, fmt.Errorf("error creating sheet: %w", err))
		return
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Booking ID", "Name", "Description", "Building", "Start", "End",
		"Type", "Repeat", "Repeat Day", "Created By", "Modified By", "Last Update",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	for rowIdx, b := range bookings {
		values := []any{
			b.BookingID, b.Name, b.Description, b.BuildingID,
			b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339),
			b.Type, b.RepeatType, b.RepeatDay,
			b.CreatedBy, b.ModifiedBy, b.LastUpdate.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, style)
	_ = f.SetColWidth(sheetName, "A", "L", 22)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	fullPath := filepath.Join(s.cfg.Exports.Path, fileName)
	if err := f.SaveAs(fullPath); err != nil {
		s.writeDomainError(w, fmt.Errorf("error saving export file: %w", err))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	http.ServeFile(w, r, fullPath)
}

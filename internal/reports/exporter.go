package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// BookingExporter renders booking rows in the formats the front desk asks
// for: a month summary as CSV/Excel/PDF and a per-day kitchen run sheet.
type BookingExporter interface {
	ExportMonth(format, month string, rows []BookingRow) ([]byte, string, string, error)
	ExportRunSheet(dateKey string, rows []BookingRow) ([]byte, string, string, error)
}

type bookingExporter struct{}

func NewBookingExporter() BookingExporter {
	return &bookingExporter{}
}

var monthHeaders = []string{"Date", "Title", "Type", "Guest", "Phone", "Pax", "Venue", "Food", "Meal", "Start", "End"}

// ExportMonth renders the month summary; the returned values are the file
// bytes, a timestamped filename and the content type.
func (e *bookingExporter) ExportMonth(format, month string, rows []BookingRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")
	name := strings.ReplaceAll(month, "-", "_")

	switch format {
	case FormatCSV:
		data, err := e.exportMonthCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_%s_%s.csv", name, timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportMonthExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_%s_%s.xlsx", name, timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportMonthPDF(month, rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_%s_%s.pdf", name, timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *bookingExporter) exportMonthCSV(rows []BookingRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(monthHeaders); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.DateKey, r.Title, r.Type, r.GuestName, r.Phone,
			strconv.Itoa(r.Pax), r.Venue, foodLabel(r.WithFood), r.Meal,
			r.Start, r.End,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (e *bookingExporter) exportMonthExcel(rows []BookingRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range monthHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.DateKey)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Title)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.GuestName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Pax)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Venue)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), foodLabel(r.WithFood))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.Meal)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), r.Start)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), r.End)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *bookingExporter) exportMonthPDF(month string, rows []BookingRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Bookings - %s", month))
	pdf.Ln(12)

	widths := []float64{24, 45, 22, 40, 28, 12, 35, 16, 30}
	headers := []string{"Date", "Title", "Type", "Guest", "Phone", "Pax", "Venue", "Food", "Meal"}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	totalPax := 0
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.DateKey, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Type, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.GuestName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.Phone, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, strconv.Itoa(r.Pax), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.Venue, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[7], 6, foodLabel(r.WithFood), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[8], 6, r.Meal, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
		totalPax += r.Pax
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Bookings: %d    Total pax: %d", len(rows), totalPax))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportRunSheet renders the kitchen run sheet for one day: who is coming,
// how many covers, which venue, and the full menu per booking.
func (e *bookingExporter) ExportRunSheet(dateKey string, rows []BookingRow) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Run Sheet - %s", dateKey))
	pdf.Ln(14)

	for i, r := range rows {
		pdf.SetFont("Arial", "B", 11)
		title := r.Title
		if title == "" {
			title = "(untitled)"
		}
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s [%s]", i+1, title, r.Type))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Guest: %s    Phone: %s    Pax: %d    Venue: %s",
			dash(r.GuestName), dash(r.Phone), r.Pax, dash(r.Venue)))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Time: %s - %s    Service: %s", dash(r.Start), dash(r.End), dash(r.MealType)))
		pdf.Ln(6)

		if r.WithFood {
			meal := r.MealTitle
			if meal == "" {
				meal = r.Meal
			}
			pdf.Cell(0, 6, fmt.Sprintf("Meal: %s", dash(meal)))
			pdf.Ln(6)
			for _, item := range r.MealItems {
				pdf.Cell(0, 5, "  - "+item)
				pdf.Ln(5)
			}
		} else {
			pdf.Cell(0, 6, "Meal: without food")
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(rows) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "No bookings for this date.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}
	filename := fmt.Sprintf("runsheet_%s.pdf", strings.ReplaceAll(dateKey, "-", "_"))
	return buf.Bytes(), filename, "application/pdf", nil
}

func foodLabel(withFood bool) string {
	if withFood {
		return "w/Food"
	}
	return "w/o"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

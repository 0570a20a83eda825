package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
)

// BuildSeriesCSV renders the merged series as CSV. Absent fields render as
// empty cells, never as zero.
func BuildSeriesCSV(series []flightdata.MetricPoint) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{
		"date",
		"flight_hours",
		"flight_cycles",
		"cumulative_hours",
		"cumulative_cycles",
		"failure_rate_per_1000h",
	})
	for _, point := range series {
		_ = writer.Write([]string{
			point.Date.String(),
			formatOptional(point.FlightHours),
			formatOptional(point.FlightCycles),
			formatOptional(point.CumulativeHours),
			formatOptional(point.CumulativeCycles),
			strconv.FormatFloat(point.FailureRatePer1000H, 'f', 2, 64),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSeriesXLSX renders the merged series as a workbook.
func BuildSeriesXLSX(series []flightdata.MetricPoint) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "series"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Flight Hours", "Flight Cycles", "Cumulative Hours", "Cumulative Cycles", "Failures / 1000 FH"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for i, point := range series {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), point.Date.String())
		setOptionalCell(f, sheet, fmt.Sprintf("B%d", row), point.FlightHours)
		setOptionalCell(f, sheet, fmt.Sprintf("C%d", row), point.FlightCycles)
		setOptionalCell(f, sheet, fmt.Sprintf("D%d", row), point.CumulativeHours)
		setOptionalCell(f, sheet, fmt.Sprintf("E%d", row), point.CumulativeCycles)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), point.FailureRatePer1000H)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSeriesPDF renders a minimal PDF table of the merged series.
func BuildSeriesPDF(series []flightdata.MetricPoint) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Fleet Operations Series")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(28, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(26, 6, "FH", "1", 0, "C", false, 0, "")
	pdf.CellFormat(26, 6, "FC", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Cum FH", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Cum FC", "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 6, "Fail/1000FH", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, point := range series {
		pdf.CellFormat(28, 6, point.Date.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 6, formatOptional(point.FlightHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, formatOptional(point.FlightCycles), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, formatOptional(point.CumulativeHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, formatOptional(point.CumulativeCycles), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 6, fmt.Sprintf("%.2f", point.FailureRatePer1000H), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatOptional(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func setOptionalCell(f *excelize.File, sheet, cell string, value *float64) {
	if value == nil {
		return
	}
	_ = f.SetCellValue(sheet, cell, *value)
}

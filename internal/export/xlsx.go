package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	billsSheet  = "Bills"
	checksSheet = "Checks"
)

// XLSXReport renders one row per bill and a Checks sheet listing every
// annotation.
func XLSXReport(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", billsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(checksSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(billsSheet)
	f.SetActiveSheet(activeIndex)

	header, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	failed, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1}})

	writeRow(f, billsSheet, 1, []any{
		"File", "Provider", "Status", "Passed", "Matched", "Mismatched",
		"Inapplicable", "Corrections", "Finished",
	})
	_ = f.SetRowStyle(billsSheet, 1, 1, header)
	writeRow(f, checksSheet, 1, []any{
		"File", "Provider", "Annotation", "Outcome", "Calculated", "Stated", "Difference", "Formula",
	})
	_ = f.SetRowStyle(checksSheet, 1, 1, header)

	checkRow := 2
	for i, r := range rows {
		row := i + 2
		finished := ""
		if !r.FinishedAt.IsZero() {
			finished = r.FinishedAt.Format("2006-01-02 15:04:05")
		}
		writeRow(f, billsSheet, row, []any{
			r.File, r.Provider, r.Status, r.Passed, r.Matched, r.Mismatched,
			r.Inapplicable, r.Corrections, finished,
		})
		if !r.Passed {
			_ = f.SetRowStyle(billsSheet, row, row, failed)
		}
		for _, c := range r.Checks {
			writeRow(f, checksSheet, checkRow, []any{
				r.File, r.Provider, c.Annotation, c.Outcome,
				numberOrBlank(c.Calculated), numberOrBlank(c.Stated), numberOrBlank(c.Difference),
				c.Formula,
			})
			checkRow++
		}
	}

	_ = f.SetColWidth(billsSheet, "A", "A", 40)
	_ = f.SetColWidth(billsSheet, "B", "C", 18)
	_ = f.SetColWidth(billsSheet, "I", "I", 20)
	_ = f.SetColWidth(checksSheet, "A", "A", 40)
	_ = f.SetColWidth(checksSheet, "C", "C", 52)
	_ = f.SetColWidth(checksSheet, "E", "G", 14)
	_ = f.SetColWidth(checksSheet, "H", "H", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

// numberOrBlank keeps amounts numeric in the sheet so they can be summed.
func numberOrBlank(s string) any {
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return v
}

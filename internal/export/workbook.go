package export

import (
	"fmt"

	"traceability-backend/internal/state"

	"github.com/xuri/excelize/v2"
)

const (
	LotsSheet         = "Lots"
	TemperaturesSheet = "Temperatures"
)

// Workbook holds the lots and temperature tables as two sheets. The caller closes it.
func Workbook(c state.Collections) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", LotsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(TemperaturesSheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSheet(f, LotsSheet, LotHeader, LotRows(c.Lots), headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, TemperaturesSheet, TemperatureHeader, TemperatureRows(c.Temperatures), headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string, headerStyle int) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, r+2, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheet, "A", lastCol, 16)
}

// Package export renders the log books as CSV, JSON and XLSX documents.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
)

var (
	LotHeader = []string{
		"lotCode", "createdDate", "createdTime", "product", "quantity", "expiryDate", "operator",
		"componentType", "componentName", "componentBrand", "componentLot", "componentExpiry",
	}
	TemperatureHeader = []string{"date", "slot", "note", "unit", "value", "ok", "correctiveAction"}
)

// Filename builds traceability-<kind>-YYYY-MM-DD.<ext>, or traceability-YYYY-MM-DD.<ext> for an empty kind.
func Filename(kind, ext string, now time.Time) string {
	date := engine.FormatDate(now)
	if kind == "" {
		return fmt.Sprintf("traceability-%s.%s", date, ext)
	}
	return fmt.Sprintf("traceability-%s-%s.%s", kind, date, ext)
}

// LotRows flattens lots to one row per component. A lot without components
// still gets one row, with the component columns left empty.
func LotRows(lots []models.ProductionLot) [][]string {
	rows := make([][]string, 0, len(lots))
	for _, l := range lots {
		head := []string{
			l.LotCode,
			l.CreatedAt.Format(models.DateLayout),
			l.CreatedAt.Format("15:04"),
			l.FinishedProductName,
			l.Quantity,
			l.ExpiryDate,
			l.Operator,
		}
		if len(l.Components) == 0 {
			rows = append(rows, append(head, "", "", "", "", ""))
			continue
		}
		for _, c := range l.Components {
			row := make([]string, 0, len(LotHeader))
			row = append(row, head...)
			row = append(row, string(c.Type), c.Name, c.Brand, c.LotNumber, c.ExpiryDate)
			rows = append(rows, row)
		}
	}
	return rows
}

// TemperatureRows flattens readings to one row per unit reading.
func TemperatureRows(readings []models.TemperatureReading) [][]string {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		for _, ur := range r.Readings {
			value, ok := "", ""
			if ur.Value != nil {
				value = strconv.FormatFloat(*ur.Value, 'f', -1, 64)
				ok = "no"
				if ur.OK {
					ok = "yes"
				}
			}
			rows = append(rows, []string{r.Date, string(r.Slot), r.Note, ur.UnitName, value, ok, ur.CorrectiveAction})
		}
	}
	return rows
}

func WriteLotsCSV(w io.Writer, lots []models.ProductionLot) error {
	return writeCSV(w, LotHeader, LotRows(lots))
}

func WriteTemperaturesCSV(w io.Writer, readings []models.TemperatureReading) error {
	return writeCSV(w, TemperatureHeader, TemperatureRows(readings))
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteJSON dumps every collection as an indented backup document.
func WriteJSON(w io.Writer, c state.Collections) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

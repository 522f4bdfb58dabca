// Package xlsx reads worksheets from local Excel workbooks as record grids.
package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gsuite-tools/sheets-records/records"
)

type Workbook struct {
	file     *excelize.File
	date1904 bool
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook '%s' (%w)", path, err)
	}

	return newWorkbook(f), nil
}

func newWorkbook(f *excelize.File) *Workbook {
	w := Workbook{
		file: f,
	}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		w.date1904 = *props.Date1904
	}

	return &w
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// FetchGrid returns the cell values of the named worksheet (the active worksheet if
// the name is blank). The workbook argument is ignored and exists so that Workbook can
// stand in for a remote spreadsheet.
func (w *Workbook) FetchGrid(ctx context.Context, workbook, sheet string) (records.Grid, error) {
	if strings.TrimSpace(sheet) == "" {
		sheet = w.file.GetSheetName(w.file.GetActiveSheetIndex())
	}

	if index, err := w.file.GetSheetIndex(sheet); err != nil {
		return nil, err
	} else if index < 0 {
		return nil, fmt.Errorf("unable to identify worksheet for '%s'", sheet)
	}

	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(records.Grid, 0, len(rows))
	for r, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells := make([]any, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}

			if cells[c], err = w.value(sheet, cell, raw); err != nil {
				return nil, err
			}
		}

		grid = append(grid, cells)
	}

	return grid, nil
}

func (w *Workbook) value(sheet, cell, raw string) (any, error) {
	kind, err := w.file.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}

	switch kind {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil

	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t, nil
		}
		return raw, nil

	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			if date, err := w.isDate(sheet, cell); err != nil {
				return nil, err
			} else if date {
				return excelize.ExcelDateToTime(f, w.date1904)
			}
		}

		return parseNumber(raw), nil

	default:
		return raw, nil
	}
}

func (w *Workbook) isDate(sheet, cell string) (bool, error) {
	index, err := w.file.GetCellStyle(sheet, cell)
	if err != nil || index == 0 {
		return false, err
	}

	style, err := w.file.GetStyle(index)
	if err != nil || style == nil {
		return false, err
	}

	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt), nil
	}

	return isBuiltInDate(style.NumFmt), nil
}

// parseNumber returns int64 for integers, float64 for decimals and anything else as
// the raw string.
func parseNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

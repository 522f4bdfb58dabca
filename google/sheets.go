// Package google implements the worksheet grid source and the log file store on top of
// the Google Sheets and Google Drive APIs.
package google

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gsuite-tools/sheets-records/log"
	"github.com/gsuite-tools/sheets-records/records"
)

const gridFields = "properties(timeZone),sheets(properties(title),data(rowData(values(effectiveValue,effectiveFormat(numberFormat(type))))))"

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// Sheets retrieves worksheets as record grids.
type Sheets struct {
	service *sheets.Service
}

func NewSheets(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Sheets, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &Sheets{
		service: service,
	}, nil
}

// FetchGrid retrieves the cell values of a worksheet. A blank sheet name selects the
// first worksheet in the spreadsheet.
func (s *Sheets) FetchGrid(ctx context.Context, spreadsheetID, sheetName string) (records.Grid, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("missing spreadsheet ID")
	}

	call := s.service.Spreadsheets.Get(spreadsheetID).
		IncludeGridData(true).
		Fields(gridFields).
		Context(ctx)

	if sheetName != "" {
		call = call.Ranges(quote(sheetName))
	}

	log.Debugf("Fetching spreadsheet - ID:%s  sheet:%s", spreadsheetID, sheetName)

	spreadsheet, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return makeGrid(spreadsheet, sheetName)
}

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL. Anything that
// is not a URL is returned as is.
func SpreadsheetID(v string) (string, error) {
	v = strings.TrimSpace(v)

	if strings.HasPrefix(v, "https://") {
		match := spreadsheetURL.FindStringSubmatch(v)
		if len(match) < 2 || match[1] == "" {
			return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
		}

		return match[1], nil
	}

	return v, nil
}

func makeGrid(spreadsheet *sheets.Spreadsheet, name string) (records.Grid, error) {
	sheet, err := getSheet(spreadsheet, name)
	if err != nil {
		return nil, err
	}

	location := time.UTC
	if spreadsheet.Properties != nil && spreadsheet.Properties.TimeZone != "" {
		if tz, err := time.LoadLocation(spreadsheet.Properties.TimeZone); err != nil {
			log.Warnf("Unknown spreadsheet time zone '%s' - using UTC", spreadsheet.Properties.TimeZone)
		} else {
			location = tz
		}
	}

	grid := records.Grid{}
	for _, data := range sheet.Data {
		if data == nil {
			continue
		}

		for _, row := range data.RowData {
			cells := []any{}
			if row != nil {
				for _, cell := range row.Values {
					cells = append(cells, value(cell, location))
				}
			}

			grid = append(grid, cells)
		}
	}

	return grid, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no worksheets")
	}

	if strings.TrimSpace(name) == "" {
		return spreadsheet.Sheets[0], nil
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(name) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet for '%s'", name)
}

func value(cell *sheets.CellData, location *time.Location) any {
	if cell == nil || cell.EffectiveValue == nil {
		return nil
	}

	v := cell.EffectiveValue

	switch {
	case v.NumberValue != nil:
		if isDateFormat(cell) {
			return fromSerial(*v.NumberValue, location)
		}
		return *v.NumberValue

	case v.StringValue != nil:
		return *v.StringValue

	case v.BoolValue != nil:
		return *v.BoolValue

	case v.ErrorValue != nil:
		if v.ErrorValue.Message != "" {
			return v.ErrorValue.Message
		}
		return v.ErrorValue.Type

	case v.FormulaValue != nil:
		return *v.FormulaValue
	}

	return nil
}

func isDateFormat(cell *sheets.CellData) bool {
	if cell.EffectiveFormat == nil || cell.EffectiveFormat.NumberFormat == nil {
		return false
	}

	switch cell.EffectiveFormat.NumberFormat.Type {
	case "DATE", "DATE_TIME", "TIME":
		return true
	default:
		return false
	}
}

// quote wraps a sheet name in single quotes for use as an A1 range.
func quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

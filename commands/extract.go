package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/config"
	"github.com/gsuite-tools/sheets-records/log"
	"github.com/gsuite-tools/sheets-records/records"
)

// extraction holds the record extraction flags shared by 'get' and 'xlsx'.
type extraction struct {
	sheet      string
	header     int
	keys       string
	skip       string
	dateSuffix string
	format     string
	file       string
}

func (e *extraction) flags(cmd *cobra.Command, file string) {
	flags := cmd.Flags()

	flags.StringVar(&e.sheet, "sheet", e.sheet, "Worksheet name. Defaults to the configured sheet, or the first/active worksheet")
	flags.IntVar(&e.header, "header", e.header, "Zero-based index of the header row")
	flags.StringVar(&e.keys, "keys", e.keys, "Record key policy ('indexed' or 'plain')")
	flags.StringVar(&e.skip, "skip", e.skip, "Rows excluded from the records ('through-header' or 'header-only')")
	flags.StringVar(&e.dateSuffix, "date-suffix", e.dateSuffix, "Suffix appended to the keys of date values e.g. '_datetime'")
	flags.StringVar(&e.format, "format", "json", "Output format ('json' or 'tsv')")
	flags.StringVar(&e.file, file, "", "Output file. Defaults to stdout")
}

// resolve overlays the command line flags on the configuration.
func (e *extraction) resolve(cmd *cobra.Command, conf *config.Config) (records.Options, string, int, error) {
	flags := cmd.Flags()

	if flags.Changed("keys") {
		conf.Keys = e.keys
	}

	if flags.Changed("skip") {
		conf.Skip = e.skip
	}

	if flags.Changed("date-suffix") {
		conf.DateSuffix = e.dateSuffix
	}

	sheet := conf.Sheet
	if flags.Changed("sheet") {
		sheet = e.sheet
	}

	header := conf.Header
	if flags.Changed("header") {
		header = e.header
	}

	if header < 0 {
		return records.Options{}, "", 0, fmt.Errorf("invalid --header %d", header)
	}

	switch strings.ToLower(e.format) {
	case "json", "tsv":
	default:
		return records.Options{}, "", 0, fmt.Errorf("invalid --format '%s' - expected 'json' or 'tsv'", e.format)
	}

	options, err := conf.Options()
	if err != nil {
		return records.Options{}, "", 0, err
	}

	return options, sheet, header, nil
}

func (e *extraction) run(ctx context.Context, cmd *cobra.Command, conf *config.Config, source GridSource, spreadsheet string) error {
	options, sheet, header, err := e.resolve(cmd, conf)
	if err != nil {
		return err
	}

	grid, err := source.FetchGrid(ctx, spreadsheet, sheet)
	if err != nil {
		return err
	}

	list, err := options.Extract(grid, header)
	if err != nil {
		return err
	}

	log.Debugf("Extracted %d records from %d rows (keys:%v  skip:%v)", len(list), len(grid), options.Keys, options.Skip)

	err = write(e.file, cmd.OutOrStdout(), func(w io.Writer) error {
		if strings.ToLower(e.format) == "tsv" {
			if len(grid) == 0 {
				return fmt.Errorf("no data in worksheet")
			}

			keys, err := options.HeaderKeys(grid, header)
			if err != nil {
				return err
			}

			if n := wider(grid, len(keys)); n > 0 {
				log.Warnf("%d rows have more columns than the header row - the extra columns are not included in the TSV output", n)
			}

			return options.WriteTSV(w, keys, list)
		}

		return records.WriteJSON(w, list)
	})

	if err != nil {
		return err
	}

	if e.file != "" && e.file != "-" {
		log.Infof("Wrote %d records to %s", len(list), e.file)
	}

	return nil
}

func wider(grid records.Grid, columns int) int {
	count := 0
	for _, row := range grid {
		if len(row) > columns {
			count++
		}
	}

	return count
}

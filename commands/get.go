package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/config"
	"github.com/gsuite-tools/sheets-records/google"
)

type sourceFactory func(context.Context, *config.Config, *cobra.Command) (GridSource, error)

// Get retrieves a Google Sheets worksheet and writes it out as a list of records.
type Get struct {
	extraction
	spreadsheet string
	source      sourceFactory
}

func NewGetCmd(options *Options) *cobra.Command {
	return newGetCmd(options, sheetsSource)
}

func newGetCmd(options *Options, source sourceFactory) *cobra.Command {
	get := Get{
		source: source,
	}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieves a Google Sheets worksheet as a list of JSON or TSV records",
		Long: `Retrieves a worksheet from a Google Sheets spreadsheet and converts the rows following
the header row to records keyed by the normalised header text.`,
		Example: `  sheets-records get --spreadsheet "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --sheet Staff
  sheets-records get --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --header 2 --keys plain --file staff.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get.execute(cmd, options)
		},
	}

	cmd.Flags().StringVar(&get.spreadsheet, "spreadsheet", "", "Spreadsheet URL or ID. Defaults to the configured spreadsheet")
	get.flags(cmd, "file")

	return cmd
}

func (g *Get) execute(cmd *cobra.Command, options *Options) error {
	conf, err := options.load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("spreadsheet") {
		conf.Spreadsheet = g.spreadsheet
	}

	if strings.TrimSpace(conf.Spreadsheet) == "" {
		return fmt.Errorf("--spreadsheet is a required option")
	}

	spreadsheet, err := google.SpreadsheetID(conf.Spreadsheet)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := g.source(ctx, conf, cmd)
	if err != nil {
		return err
	}

	return g.run(ctx, cmd, conf, source, spreadsheet)
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/xlsx"
)

// XLSX converts a worksheet in a local Excel workbook to a list of records.
type XLSX struct {
	extraction
	workbook string
}

func NewXLSXCmd(options *Options) *cobra.Command {
	x := XLSX{}

	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Converts a worksheet in an Excel workbook to a list of JSON or TSV records",
		Example: `  sheets-records xlsx --file staff.xlsx
  sheets-records xlsx --file staff.xlsx --sheet "Staff List" --header 1 --format tsv --out staff.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return x.execute(cmd, options)
		},
	}

	cmd.Flags().StringVar(&x.workbook, "file", "", "Excel workbook (.xlsx)")
	x.flags(cmd, "out")

	return cmd
}

func (x *XLSX) execute(cmd *cobra.Command, options *Options) error {
	conf, err := options.load()
	if err != nil {
		return err
	}

	if strings.TrimSpace(x.workbook) == "" {
		return fmt.Errorf("--file is a required option")
	}

	w, err := xlsx.Open(x.workbook)
	if err != nil {
		return err
	}

	defer w.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return x.run(ctx, cmd, conf, w, x.workbook)
}

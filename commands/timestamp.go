package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/timestamp"
)

func NewTimestampCmd() *cobra.Command {
	separator := timestamp.DefaultSeparator

	cmd := &cobra.Command{
		Use:     "timestamp",
		Short:   "Prints the current local time in the log file name format e.g. 2023_03_01_09h00min00s",
		Example: `  sheets-records timestamp --separator -`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), timestamp.Format(time.Now(), separator))
			return err
		},
	}

	cmd.Flags().StringVar(&separator, "separator", separator, "Separator between the year, month, day and time")

	return cmd
}

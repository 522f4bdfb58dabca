package commands

import (
	"time"

	"github.com/spf13/cobra"
)

var now = time.Now

// NewRootCmd returns the 'sheets-records' command with all the subcommands attached.
func NewRootCmd() *cobra.Command {
	options := Options{
		LogFormat: "text",
	}

	root := &cobra.Command{
		Use:   APP,
		Short: "Extracts Google Sheets and Excel worksheets as lists of records",
		Long: `sheets-records converts the rows of a worksheet into records keyed by the worksheet
header row and writes them as JSON or TSV. It can also upload run logs to Google Drive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&options.Config, "config", "", "YAML configuration file")
	flags.BoolVar(&options.Debug, "debug", false, "Enables debugging information")
	flags.StringVar(&options.LogFormat, "log-format", options.LogFormat, "Log format ('text' or 'json')")

	root.AddCommand(
		NewGetCmd(&options),
		NewXLSXCmd(&options),
		NewLogFileCmd(&options),
		NewTimestampCmd(),
		NewAuthoriseCmd(&options),
		NewVersionCmd(),
	)

	return root
}

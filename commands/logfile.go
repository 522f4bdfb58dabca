package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/config"
	"github.com/gsuite-tools/sheets-records/logfile"
	"github.com/gsuite-tools/sheets-records/timestamp"
)

type storeFactory func(context.Context, *config.Config, *cobra.Command) (logfile.Store, error)

// LogFile uploads content to a Google Drive folder as '<name>.<MIME subtype>' and prints
// the JSON result.
type LogFile struct {
	folder    string
	name      string
	mimeType  string
	timestamp bool
	separator string
	in        string
	store     storeFactory
}

func NewLogFileCmd(options *Options) *cobra.Command {
	return newLogFileCmd(options, driveStore)
}

func newLogFileCmd(options *Options, store storeFactory) *cobra.Command {
	l := LogFile{
		store: store,
	}

	cmd := &cobra.Command{
		Use:   "log-file",
		Short: "Writes a log file to a Google Drive folder",
		Long: `Writes the input (stdin by default) to a new Google Drive file named after the log
name and the MIME subtype e.g. logFile.json, and moves it to the destination folder.
The outcome is printed as a JSON object.`,
		Example: `  sheets-records get --sheet Staff | sheets-records log-file --folder 0B3x9FoldErId --name staff --timestamp
  sheets-records log-file --in run.txt --mime-type text/plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return l.execute(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&l.folder, "folder", "", "Destination folder ID. Defaults to the configured folder, or the Drive root folder")
	flags.StringVar(&l.name, "name", "", "Log file name, without extension")
	flags.StringVar(&l.mimeType, "mime-type", "", "Log file MIME type e.g. application/json")
	flags.BoolVar(&l.timestamp, "timestamp", false, "Appends the current local time to the log file name")
	flags.StringVar(&l.separator, "separator", "", "Timestamp separator")
	flags.StringVar(&l.in, "in", "", "Input file. Defaults to stdin")

	return cmd
}

func (l *LogFile) execute(cmd *cobra.Command, options *Options) error {
	conf, err := options.load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("folder") {
		conf.Log.Folder = l.folder
	}

	if flags.Changed("name") {
		conf.Log.Name = l.name
	}

	if flags.Changed("mime-type") {
		conf.Log.MimeType = l.mimeType
	}

	if flags.Changed("timestamp") {
		conf.Log.Timestamp = l.timestamp
	}

	if flags.Changed("separator") {
		conf.Log.Separator = l.separator
	}

	content, err := l.read(cmd.InOrStdin(), conf.Log.MimeType)
	if err != nil {
		return err
	}

	name := conf.Log.Name
	if conf.Log.Timestamp {
		name = fmt.Sprintf("%s%s%s", name, conf.Log.Separator, timestamp.Format(now(), conf.Log.Separator))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := l.store(ctx, conf, cmd)
	if err != nil {
		return err
	}

	result := logfile.CreateIn(ctx, store, content, conf.Log.Folder, logfile.Options{
		Name:     name,
		MimeType: conf.Log.MimeType,
	})

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}

	return nil
}

// read returns the input as raw bytes or, for a JSON MIME type with valid JSON input,
// as the decoded value so that it is reformatted on upload.
func (l *LogFile) read(stdin io.Reader, mimeType string) (any, error) {
	var b []byte
	var err error

	if l.in == "" || l.in == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(l.in)
	}

	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(mimeType), "/json") && json.Valid(b) {
		var v any
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
	}

	return b, nil
}

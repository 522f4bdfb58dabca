package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/config"
	"github.com/gsuite-tools/sheets-records/google"
	"github.com/gsuite-tools/sheets-records/log"
	"github.com/gsuite-tools/sheets-records/logfile"
	"github.com/gsuite-tools/sheets-records/records"
)

const APP = "sheets-records"

// Options are the global command line options.
type Options struct {
	Config    string
	Debug     bool
	LogFormat string
}

// GridSource retrieves a worksheet as a record grid.
type GridSource interface {
	FetchGrid(ctx context.Context, spreadsheet, sheet string) (records.Grid, error)
}

func (o *Options) load() (*config.Config, error) {
	log.SetDebug(o.Debug)

	if err := log.SetFormat(o.LogFormat); err != nil {
		return nil, err
	}

	conf, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}

	log.Debugf("Configuration - workdir:%s  credentials:%s", conf.Workdir, conf.Credentials)

	return conf, nil
}

func authorize(ctx context.Context, conf *config.Config, cmd *cobra.Command) (*http.Client, error) {
	if strings.TrimSpace(conf.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	client, err := google.Authorize(ctx, conf.Credentials, conf.TokensFile(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return client, nil
}

func sheetsSource(ctx context.Context, conf *config.Config, cmd *cobra.Command) (GridSource, error) {
	client, err := authorize(ctx, conf, cmd)
	if err != nil {
		return nil, err
	}

	return google.NewSheets(ctx, client)
}

func driveStore(ctx context.Context, conf *config.Config, cmd *cobra.Command) (logfile.Store, error) {
	client, err := authorize(ctx, conf, cmd)
	if err != nil {
		return nil, err
	}

	return google.NewDrive(ctx, client)
}

// write writes the output to 'file' via a temporary file in the same directory, or
// to 'stdout' if the file is blank or '-'.
func write(file string, stdout io.Writer, f func(io.Writer) error) error {
	if file == "" || file == "-" {
		return f(stdout)
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+APP+"-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := f(tmp); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

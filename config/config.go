// Package config loads the sheets-records YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/gsuite-tools/sheets-records/google"
	"github.com/gsuite-tools/sheets-records/logfile"
	"github.com/gsuite-tools/sheets-records/records"
	"github.com/gsuite-tools/sheets-records/timestamp"
)

const (
	EnvCredentials = "SHEETS_RECORDS_CREDENTIALS"
	EnvSpreadsheet = "SHEETS_RECORDS_SPREADSHEET"
	EnvWorkdir     = "SHEETS_RECORDS_WORKDIR"
)

type Config struct {
	Credentials string `yaml:"credentials"`
	Workdir     string `yaml:"workdir"`
	Spreadsheet string `yaml:"spreadsheet"`
	Sheet       string `yaml:"sheet"`
	Header      int    `yaml:"header"`
	Keys        string `yaml:"keys"`
	Skip        string `yaml:"skip"`
	DateSuffix  string `yaml:"date-suffix"`

	Log struct {
		Folder    string `yaml:"folder"`
		Name      string `yaml:"name"`
		MimeType  string `yaml:"mime-type"`
		Timestamp bool   `yaml:"timestamp"`
		Separator string `yaml:"separator"`
	} `yaml:"log"`
}

// NewConfig returns a configuration initialised with the defaults.
func NewConfig() *Config {
	c := Config{}
	c.SetDefaults()

	return &c
}

// Load reads the YAML configuration file, applies any environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := &Config{}

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to read configuration file '%s' (%w)", path, err)
		} else if err == nil {
			if err := yaml.Unmarshal(bytes, c); err != nil {
				return nil, fmt.Errorf("invalid configuration file '%s' (%w)", path, err)
			}
		}
	}

	c.ApplyEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// SetDefaults fills in any unset optional fields.
func (c *Config) SetDefaults() {
	if c.Workdir == "" {
		c.Workdir = DefaultWorkdir
	}

	if c.Credentials == "" {
		c.Credentials = filepath.Join(c.Workdir, ".google", "credentials.json")
	}

	if c.Keys == "" {
		c.Keys = records.IndexPrefixed.String()
	}

	if c.Skip == "" {
		c.Skip = records.SkipThroughHeader.String()
	}

	if c.Log.Name == "" {
		c.Log.Name = logfile.DefaultName
	}

	if c.Log.MimeType == "" {
		c.Log.MimeType = logfile.DefaultMimeType
	}

	if c.Log.Separator == "" {
		c.Log.Separator = timestamp.DefaultSeparator
	}
}

// ApplyEnv overrides the credentials, spreadsheet and working directory with the
// SHEETS_RECORDS_* environment variables, if set.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvWorkdir)); v != "" {
		c.Workdir = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvCredentials)); v != "" {
		c.Credentials = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvSpreadsheet)); v != "" {
		c.Spreadsheet = v
	}
}

// Validate checks the configuration, after applying the defaults.
func (c *Config) Validate() error {
	c.SetDefaults()

	if c.Header < 0 {
		return fmt.Errorf("invalid header row %d", c.Header)
	}

	if _, err := records.ParseKeyPolicy(c.Keys); err != nil {
		return err
	}

	if _, err := records.ParseRowPolicy(c.Skip); err != nil {
		return err
	}

	if !strings.Contains(c.Log.MimeType, "/") {
		return fmt.Errorf("invalid log MIME type '%s'", c.Log.MimeType)
	}

	return nil
}

// Options returns the record extraction options.
func (c *Config) Options() (records.Options, error) {
	keys, err := records.ParseKeyPolicy(c.Keys)
	if err != nil {
		return records.Options{}, err
	}

	skip, err := records.ParseRowPolicy(c.Skip)
	if err != nil {
		return records.Options{}, err
	}

	return records.Options{
		Keys:       keys,
		Skip:       skip,
		DateSuffix: c.DateSuffix,
	}, nil
}

// TokensFile is the OAuth2 token cache for the configured credentials.
func (c *Config) TokensFile() string {
	return google.TokensFile(c.Workdir, c.Credentials)
}

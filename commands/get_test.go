package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsuite-tools/sheets-records/records"
)

func TestGet(t *testing.T) {
	isolate(t)

	expected := `[
        { "0_first_name": "Ana", "1_age": 30 },
        { "0_first_name": "Leo", "1_age": null }
    ]`

	s := source{grid: staff()}
	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "",
		"--spreadsheet", "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0",
		"--sheet", "Staff",
		"--header", "1")

	require.NoError(t, err)
	assert.JSONEq(t, expected, stdout)
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", s.spreadsheet)
	assert.Equal(t, "Staff", s.sheet)
}

func TestGetWithPlainKeysAndHeaderOnly(t *testing.T) {
	isolate(t)

	expected := `[
        { "first_name": "Staff list" },
        { "first_name": "Ana", "age": 30 },
        { "first_name": "Leo", "age": null }
    ]`

	s := source{grid: staff()}
	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--header", "1", "--keys", "plain", "--skip", "header-only")

	require.NoError(t, err)
	assert.JSONEq(t, expected, stdout)
	assert.Equal(t, "sheet-0001", s.spreadsheet)
	assert.Equal(t, "", s.sheet)
}

func TestGetWithConfig(t *testing.T) {
	isolate(t)

	config := filepath.Join(t.TempDir(), "sheets-records.yaml")
	yaml := "spreadsheet: sheet-0002\nsheet: Staff\nheader: 1\nkeys: plain\n"
	require.NoError(t, os.WriteFile(config, []byte(yaml), 0600))

	s := source{grid: staff()}
	cmd := newGetCmd(&Options{Config: config}, s.factory())

	stdout, err := execute(cmd, "", "--skip", "header-only")

	require.NoError(t, err)
	assert.JSONEq(t, `[{ "first_name": "Staff list" }, { "first_name": "Ana", "age": 30 }, { "first_name": "Leo", "age": null }]`, stdout)
	assert.Equal(t, "sheet-0002", s.spreadsheet)
	assert.Equal(t, "Staff", s.sheet)
}

func TestGetTSV(t *testing.T) {
	isolate(t)

	expected := "0_first_name\t1_age\n" +
		"Ana\t30\n" +
		"Leo\t\n"

	s := source{grid: staff()}
	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--header", "1", "--format", "tsv")

	require.NoError(t, err)
	assert.Equal(t, expected, stdout)
}

func TestGetTSVWithDateSuffix(t *testing.T) {
	isolate(t)

	expected := "0_name\t1_joined\n" +
		"Ana\t2023-03-01T00:00:00.000Z\n"

	s := source{grid: records.Grid{
		{"Name", "Joined"},
		{"Ana", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}

	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--format", "tsv", "--date-suffix", "_datetime")

	require.NoError(t, err)
	assert.Equal(t, expected, stdout)
}

func TestGetTSVWithRaggedRows(t *testing.T) {
	isolate(t)

	expected := "0_name\t1_age\n" +
		"Ana\t30\n" +
		"Leo\t\n"

	s := source{grid: records.Grid{
		{"Name", "Age"},
		{"Ana", 30.0, "extra"},
		{"Leo"},
	}}

	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--format", "tsv")

	require.NoError(t, err)
	assert.Equal(t, expected, stdout)
}

func TestWider(t *testing.T) {
	grid := records.Grid{
		{"Name", "Age"},
		{"Ana", 30.0, "extra"},
		{"Leo"},
		{"Eve", 25.0, nil, nil},
	}

	assert.Equal(t, 2, wider(grid, 2))
	assert.Equal(t, 0, wider(grid, 4))
}

func TestGetTSVWithEmptySheet(t *testing.T) {
	isolate(t)

	s := source{grid: records.Grid{}}
	cmd := newGetCmd(&Options{}, s.factory())

	_, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--format", "tsv")

	assert.Error(t, err)
}

func TestGetWithEmptySheet(t *testing.T) {
	isolate(t)

	s := source{grid: records.Grid{}}
	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001")

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, stdout)
}

func TestGetToFile(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "staff.json")
	s := source{grid: staff()}
	cmd := newGetCmd(&Options{}, s.factory())

	stdout, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--header", "1", "--file", file)

	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `[{ "0_first_name": "Ana", "1_age": 30 }, { "0_first_name": "Leo", "1_age": null }]`, string(b))
}

func TestGetWithInvalidHeader(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "staff.json")
	s := source{grid: staff()}
	cmd := newGetCmd(&Options{}, s.factory())

	_, err := execute(cmd, "", "--spreadsheet", "sheet-0001", "--header", "4", "--file", file)

	assert.True(t, errors.Is(err, records.ErrInvalidHeaderIndex), "expected ErrInvalidHeaderIndex, got %v", err)
	assert.NoFileExists(t, file)
}

func TestGetWithInvalidOptions(t *testing.T) {
	tests := map[string][]string{
		"spreadsheet": {},
		"url":         {"--spreadsheet", "https://docs.google.com/document/d/xyz"},
		"format":      {"--spreadsheet", "sheet-0001", "--format", "xml"},
		"keys":        {"--spreadsheet", "sheet-0001", "--keys", "camel"},
		"skip":        {"--spreadsheet", "sheet-0001", "--skip", "none"},
		"header":      {"--spreadsheet", "sheet-0001", "--header=-1"},
	}

	for name, args := range tests {
		isolate(t)

		s := source{grid: staff()}
		cmd := newGetCmd(&Options{}, s.factory())

		_, err := execute(cmd, "", args...)
		assert.Error(t, err, name)
	}
}

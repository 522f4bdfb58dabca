package records

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	expected := []Record{
		{"0_name": "Ana", "1_age": 30},
		{"0_name": "Leo", "1_age": 25},
	}

	grid := Grid{
		{"Name", "Age"},
		{"Ana", 30},
		{"Leo", 25},
	}

	records, err := Extract(grid, 0)
	if err != nil {
		t.Fatalf("Unexpected error returned from Extract (%v)", err)
	}

	if !reflect.DeepEqual(records, expected) {
		t.Errorf("Incorrect records\n   expected: %v\n   got:      %v\n", expected, records)
	}
}

func TestExtractWithDates(t *testing.T) {
	grid := Grid{
		{"Card Number", "Start Date", "Active"},
		{"6001001", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"6001002", time.Date(2023, 3, 1, 12, 30, 15, 250_000_000, time.FixedZone("SAST", 2*3600)), false},
	}

	records, err := Extract(grid, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2023-03-01T00:00:00.000Z", records[0]["1_start_date"])
	assert.Equal(t, "2023-03-01T10:30:15.250Z", records[1]["1_start_date"])
	assert.Equal(t, true, records[0]["2_active"])
	assert.Equal(t, false, records[1]["2_active"])
}

func TestExtractWithDatePointer(t *testing.T) {
	date := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	var missing *time.Time

	grid := Grid{
		{"From", "To"},
		{&date, missing},
	}

	records, err := Extract(grid, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "2023-03-01T00:00:00.000Z", records[0]["0_from"])
	assert.Equal(t, missing, records[0]["1_to"])
}

func TestExtractWithEmptyGrid(t *testing.T) {
	for _, grid := range []Grid{nil, {}} {
		records, err := Extract(grid, 0)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	}
}

func TestExtractWithInvalidHeaderIndex(t *testing.T) {
	grid := Grid{
		{"Name", "Age"},
		{"Ana", 30},
		{"Leo", 25},
	}

	for _, header := range []int{-1, 3, 10} {
		records, err := Extract(grid, header)

		assert.Nil(t, records)
		assert.ErrorIs(t, err, ErrInvalidHeaderIndex, "header %v", header)

		var e *HeaderIndexError
		if assert.True(t, errors.As(err, &e)) {
			assert.Equal(t, header, e.Index)
			assert.Equal(t, 3, e.Rows)
		}
	}
}

func TestExtractRecordCount(t *testing.T) {
	grid := Grid{
		{"A", "B"},
		{1, 2},
		{3, 4},
		{5, 6},
		{7, 8},
	}

	for header := range grid {
		records, err := Extract(grid, header)

		require.NoError(t, err)
		assert.Len(t, records, len(grid)-header-1, "header %v", header)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	grid := Grid{
		{"Name", "Joined", "Score"},
		{"Ana", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC), 12.5},
		{"Leo", nil, 7},
	}

	first, err := Extract(grid, 0)
	require.NoError(t, err)

	second, err := Extract(grid, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC), grid[1][1], "grid modified")
}

func TestExtractWithRaggedRows(t *testing.T) {
	expected := []Record{
		{"0_name": "Ana"},
		{"0_name": "Leo", "1_age": 25, "2_city": "Cape Town"},
		{},
		{"0_name": "Eve", "1_age": 41, "2_city": "Durban", "3_": "extra"},
	}

	grid := Grid{
		{"Name", "Age", "City"},
		{"Ana"},
		{"Leo", 25, "Cape Town"},
		{},
		{"Eve", 41, "Durban", "extra"},
	}

	records, err := Extract(grid, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestExtractWithHeaderAfterFirstRow(t *testing.T) {
	grid := Grid{
		{"Staff List"},
		{"Name", "Age"},
		{"Ana", 30},
		{"Leo", 25},
	}

	t.Run("through-header", func(t *testing.T) {
		expected := []Record{
			{"0_name": "Ana", "1_age": 30},
			{"0_name": "Leo", "1_age": 25},
		}

		records, err := Extract(grid, 1)

		require.NoError(t, err)
		assert.Equal(t, expected, records)
	})

	t.Run("header-only", func(t *testing.T) {
		expected := []Record{
			{"0_name": "Staff List"},
			{"0_name": "Ana", "1_age": 30},
			{"0_name": "Leo", "1_age": 25},
		}

		options := DefaultOptions()
		options.Skip = SkipHeaderOnly

		records, err := options.Extract(grid, 1)

		require.NoError(t, err)
		assert.Equal(t, expected, records)
	})
}

func TestExtractWithPlainKeys(t *testing.T) {
	expected := []Record{
		{"first_name": "Lee", "age": 30},
	}

	grid := Grid{
		{"First Name", "Age", "first  name"},
		{"Ana", 30, "Lee"},
	}

	options := Options{Keys: Plain}

	records, err := options.Extract(grid, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestExtractWithDateSuffix(t *testing.T) {
	expected := []Record{
		{"name": "Ana", "joined_datetime": "2023-03-01T00:00:00.000Z"},
		{"name": "Leo", "joined": "pending"},
	}

	grid := Grid{
		{"Name", "Joined"},
		{"Ana", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Leo", "pending"},
	}

	options := Options{Keys: Plain, DateSuffix: "_datetime"}

	records, err := options.Extract(grid, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestHeaderKeys(t *testing.T) {
	grid := Grid{
		{"Card Number", "  Start\tDate ", "", nil, 2023, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		policy   KeyPolicy
		expected []string
	}{
		{IndexPrefixed, []string{"0_card_number", "1__start_date_", "2_", "3_", "4_2023", "5_2023-03-01t00:00:00.000z"}},
		{Plain, []string{"card_number", "_start_date_", "", "", "2023", "2023-03-01t00:00:00.000z"}},
	}

	for _, test := range tests {
		keys, err := Options{Keys: test.policy}.HeaderKeys(grid, 0)

		require.NoError(t, err)
		assert.Equal(t, test.expected, keys, "%v", test.policy)
	}
}

func TestDeriveKey(t *testing.T) {
	tests := map[string]string{
		"Name":             "name",
		"Date of Birth":    "date_of_birth",
		"Date  of\n Birth": "date_of_birth",
		"ALREADY_SNAKE":    "already_snake",
		"":                 "",
	}

	for header, expected := range tests {
		assert.Equal(t, expected, DeriveKey(header), "%q", header)
	}
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, "2023-03-01T00:00:00.000Z", Coerce(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "text", Coerce("text"))
	assert.Equal(t, 12.5, Coerce(12.5))
	assert.Equal(t, true, Coerce(true))
	assert.Nil(t, Coerce(nil))
}

func TestParsePolicies(t *testing.T) {
	keys, err := ParseKeyPolicy("Plain")
	require.NoError(t, err)
	assert.Equal(t, Plain, keys)

	keys, err = ParseKeyPolicy("")
	require.NoError(t, err)
	assert.Equal(t, IndexPrefixed, keys)

	_, err = ParseKeyPolicy("camel")
	assert.Error(t, err)

	rows, err := ParseRowPolicy("header-only")
	require.NoError(t, err)
	assert.Equal(t, SkipHeaderOnly, rows)

	rows, err = ParseRowPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SkipThroughHeader, rows)

	_, err = ParseRowPolicy("none")
	assert.Error(t, err)
}

package records

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteTSV writes the records as tab separated values, with the keys as the header
// line. Missing keys and nil values are written as empty fields.
func WriteTSV(f io.Writer, keys []string, records []Record) error {
	return DefaultOptions().WriteTSV(f, keys, records)
}

// WriteTSV writes the records as tab separated values. A field missing under its key is
// looked up under the key with the date suffix. Record keys beyond the header keys are
// not written.
func (o Options) WriteTSV(f io.Writer, keys []string, records []Record) error {
	if len(keys) == 0 {
		return fmt.Errorf("Missing/invalid header row")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(keys); err != nil {
		return err
	}

	for _, record := range records {
		row := make([]string, len(keys))
		for i, k := range keys {
			v, ok := record[k]
			if !ok && o.DateSuffix != "" {
				v, ok = record[k+o.DateSuffix]
			}

			if ok && v != nil {
				row[i] = fmt.Sprintf("%v", v)
			}
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

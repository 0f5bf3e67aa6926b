package record

import "strings"

// delimiter between values within one output line.
const delimiter = ", "

// ParseLines splits raw command output into records, zipping each line's
// comma-and-space-separated values positionally against the field set.
//
// The final line terminator the command emits is discarded, so a clean run
// with no data yields zero records. Short lines zip leniently: declared
// fields with no corresponding value are absent from the record rather than
// an error. Values beyond the declared set are ignored.
func ParseLines(raw string, fields FieldSet) []Record {
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	// The output always ends with a line terminator; drop the empty tail.
	lines = lines[:len(lines)-1]

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		values := strings.Split(line, delimiter)

		var r Record
		for i, field := range fields {
			if i >= len(values) {
				break
			}
			r.Set(field, values[i])
		}
		records = append(records, r)
	}
	return records
}

// Package record turns raw per-host command output into ordered field/value
// records, the hand-off structure between dispatch and table rendering.
package record

// FieldSet is the declared, ordered list of column names for a command
// family. Order is stable and defines column order.
type FieldSet []string

// Contains reports whether the field set declares the given field.
func (fs FieldSet) Contains(field string) bool {
	for _, f := range fs {
		if f == field {
			return true
		}
	}
	return false
}

// Record is an ordered association of field names to string values. Parallel
// slices keep field order stable; setting a new field appends, it never
// reorders existing ones.
type Record struct {
	fields []string
	values []string
}

// Set assigns a value to a field, appending the field if it is new.
func (r *Record) Set(field, value string) {
	for i, f := range r.fields {
		if f == field {
			r.values[i] = value
			return
		}
	}
	r.fields = append(r.fields, field)
	r.values = append(r.values, value)
}

// Get returns the value for a field and whether the field is present.
func (r *Record) Get(field string) (string, bool) {
	for i, f := range r.fields {
		if f == field {
			return r.values[i], true
		}
	}
	return "", false
}

// Fields returns the record's field names in insertion order.
func (r *Record) Fields() []string {
	return r.fields
}

// Len returns the number of fields present in the record.
func (r *Record) Len() int {
	return len(r.fields)
}

// HostRecords maps a host to its parsed records. Every dispatched host has
// an entry; failed or empty hosts map to a nil slice.
type HostRecords map[string][]Record

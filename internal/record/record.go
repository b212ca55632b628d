// Package record defines the application-shape record type and the codec
// between it and the storage shape.
package record

// Record is a flat mapping from canonical field key to a typed value.
// Values are string, float64 or bool; an absent key means the field is
// unset. The application layer never sees nil values: the codec replaces
// storage NULLs with empty-string/zero defaults on the way in.
type Record map[string]any

// Row is the storage-shape counterpart of Record: snake_case column names
// and nullable values, where nil marks SQL NULL.
type Row map[string]any

// Clone returns a shallow copy. Values are scalars, so the copy is
// independent of the original.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the field is present, even with a zero value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the field as a string, or "" when absent.
func (r Record) String(key string) string {
	return asString(r[key])
}

// Number returns the field as a float64, or 0 when absent or non-numeric.
func (r Record) Number(key string) float64 {
	return asNumber(r[key])
}

// Zero reports whether the field is absent or holds a falsy value
// ("" / 0 / false). The importer's required-field check uses this.
func (r Record) Zero(key string) bool {
	v, ok := r[key]
	if !ok {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	case bool:
		return !t
	case nil:
		return true
	}
	return false
}

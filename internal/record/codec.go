package record

// codec.go maps between the storage shape (snake_case, nullable) and the
// application shape (canonical keys, empty-string/zero defaults). Both
// directions are total functions: bad input degrades to a default or a NULL,
// never to an error.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pautaops/pauta/internal/catalog"
)

// FromStorage builds a full application record from a storage row. Every
// catalog field is assigned: NULL and missing columns become "" for
// text-like kinds and 0 for numbers, so nothing nullable leaks upward.
func FromStorage(cat *catalog.Catalog, row Row) Record {
	rec := make(Record, cat.Len())
	for _, f := range cat.Fields() {
		v := row[f.Column]
		switch {
		case f.IntColumn:
			// Integer column surfaced as a numeric string.
			rec[f.Key] = intString(v)
		case f.Kind == catalog.KindNumber:
			rec[f.Key] = asNumber(v)
		default:
			rec[f.Key] = asString(v)
		}
	}
	return rec
}

// ToStorage converts a (possibly partial) application record to a storage
// row. Only keys present in the input are emitted, which is what makes
// partial updates work. Numeric-string columns are parsed fail-open: a
// non-numeric value is written as NULL.
func ToStorage(cat *catalog.Catalog, rec Record) Row {
	row := make(Row, len(rec))
	for _, f := range cat.Fields() {
		v, ok := rec[f.Key]
		if !ok {
			continue
		}
		switch {
		case f.IntColumn:
			row[f.Column] = intOrNull(v)
		case f.Kind == catalog.KindNumber:
			row[f.Column] = asNumber(v)
		default:
			row[f.Column] = asString(v)
		}
	}
	return row
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprint(v)
}

func asNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// intString renders an integer storage value as the application-layer
// numeric string, or "" for NULL.
func intString(v any) string {
	if v == nil {
		return ""
	}
	return asString(v)
}

// intOrNull parses an application value into an int64 for an integer
// column. Empty and non-numeric input yield nil (SQL NULL).
func intOrNull(v any) any {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

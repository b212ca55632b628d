// Package sheet implements the spreadsheet side of the reconciliation
// engine: xlsx import with per-row validation, catalog-ordered export, and
// template generation.
package sheet

// convert.go coerces raw cell values into catalog value kinds. Coercion is
// fail-open throughout: input that cannot be parsed degrades to the raw
// string (dates) or to zero (numbers), never to an error.

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is day 0 of the spreadsheet date serial system.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial caps plausible date serials (year 9999).
const maxSerial = 2958465

// dateLayouts are tried in order. ISO first, then day-first forms common in
// the upstream spreadsheets, then the remaining unambiguous forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// numberJunk strips everything that is not a digit, a dot or a minus sign.
var numberJunk = regexp.MustCompile(`[^0-9.\-]`)

// CoerceDate normalizes a raw cell value to YYYY-MM-DD. Numeric cells are
// treated as spreadsheet date serials; strings are parsed against the known
// layouts. Unparseable input passes through unchanged.
func CoerceDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial > 0 && serial <= maxSerial {
			return serialEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
		}
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// CoerceNumber parses a raw cell value as a float. Clean numerics are used
// as-is; otherwise every character except digits, '.' and '-' is stripped
// before parsing. Still unparseable input yields 0.
//
// The stripping keeps decimal dots but not commas, so a locale-formatted
// cell like "R$ 1.234,56" parses as 1.23456. Clean numeric cells are not
// affected because xlsx stores them as plain numbers.
func CoerceNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	s = numberJunk.ReplaceAllString(s, "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

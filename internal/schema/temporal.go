package schema

import (
	"time"
)

// External string formats fixed by S-100 Part 10c: dates are "YYYYMMDD",
// times are "HHMMSSZ", combined stamps are "YYYYMMDDTHHMMSSZ".
const (
	dateFormat     = "20060102"
	timeFormat     = "150405Z"
	dateTimeFormat = "20060102T150405Z"
)

// accepted input layouts, tried in order, per kind
var (
	dateLayouts     = []string{dateFormat, "2006-01-02"}
	timeLayouts     = []string{timeFormat, "150405", "15:04:05", "15:04:05Z"}
	dateTimeLayouts = []string{dateTimeFormat, "20060102T150405", time.RFC3339, "2006-01-02T15:04:05"}
)

// coerceTemporal normalizes a native time value or an ISO-formatted string
// to the compact S-100 string form for the given kind.
func coerceTemporal(val interface{}, kind Kind) (string, error) {
	var layout string
	var inputs []string
	switch kind {
	case KindDate:
		layout, inputs = dateFormat, dateLayouts
	case KindTime:
		layout, inputs = timeFormat, timeLayouts
	case KindDateTime:
		layout, inputs = dateTimeFormat, dateTimeLayouts
	default:
		return "", &ErrTypeMismatch{Value: val, Want: kind}
	}

	switch v := val.(type) {
	case time.Time:
		return v.UTC().Format(layout), nil
	case string:
		for _, in := range inputs {
			if t, err := time.Parse(in, v); err == nil {
				return t.UTC().Format(layout), nil
			}
		}
		return "", &ErrInvalidTemporal{Value: v, Want: kind}
	default:
		return "", &ErrTypeMismatch{Value: val, Want: kind}
	}
}

// ParseDate parses a stored "YYYYMMDD" attribute back to a time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, &ErrInvalidTemporal{Value: s, Want: KindDate}
	}
	return t, nil
}

// ParseTime parses a stored "HHMMSSZ" attribute back to a time.Time on the
// zero date.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, &ErrInvalidTemporal{Value: s, Want: KindTime}
	}
	return t, nil
}

package schema

import (
	"math"
	"strconv"
)

// coerceValue converts val to the canonical stored form for the descriptor.
// Enumerations store their canonical tag (or integer code when the external
// encoding is integer), temporals store the fixed external string form,
// chunk geometry stores the comma-joined form. Scalars store native Go
// int64/float64/string/bool.
func coerceValue(d *Descriptor, val interface{}, effective Kind) (interface{}, error) {
	kind := d.Kind
	if kind == KindRange {
		kind = effective
	}

	switch kind {
	case KindString:
		s, ok := asString(val)
		if !ok {
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindString}
		}
		return s, nil

	case KindInt:
		i, ok := asInt(val)
		if !ok {
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindInt}
		}
		return i, nil

	case KindFloat:
		f, ok := asFloat(val)
		if !ok {
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindFloat}
		}
		return f, nil

	case KindBool:
		switch v := val.(type) {
		case bool:
			return v, nil
		case int:
			return v != 0, nil
		default:
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindBool}
		}

	case KindEnum:
		tag, code, err := d.Enum.Lookup(val)
		if err != nil {
			return nil, err
		}
		if d.EnumAsInt {
			return int64(code), nil
		}
		return tag, nil

	case KindDate, KindTime, KindDateTime:
		s, err := coerceTemporal(val, kind)
		if err != nil {
			if tm, ok := err.(*ErrTypeMismatch); ok {
				tm.Key = d.Key
			}
			return nil, err
		}
		return s, nil

	case KindChunk:
		s, err := coerceChunk(val)
		if err != nil {
			if tm, ok := err.(*ErrTypeMismatch); ok {
				tm.Key = d.Key
			}
			return nil, err
		}
		return s, nil

	case KindStringList:
		switch v := val.(type) {
		case []string:
			out := make([]string, len(v))
			copy(out, v)
			return out, nil
		case string:
			return []string{v}, nil
		default:
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindStringList}
		}

	case KindFloatList:
		switch v := val.(type) {
		case []float64:
			out := make([]float64, len(v))
			copy(out, v)
			return out, nil
		case []float32:
			out := make([]float64, len(v))
			for i, f := range v {
				out[i] = float64(f)
			}
			return out, nil
		case []int:
			out := make([]float64, len(v))
			for i, n := range v {
				out[i] = float64(n)
			}
			return out, nil
		default:
			return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindFloatList}
		}

	default:
		return nil, &ErrTypeMismatch{Key: d.Key, Value: val, Want: kind}
	}
}

// coerceRangeToString converts a range value to its stored string form for
// the effective kind: integers as base-10, floats in plain (non-exponent)
// notation with a trailing ".0" stripped so exact integers read naturally
// ("12000" rather than "12000.0").
func coerceRangeToString(d *Descriptor, val interface{}, effective Kind) (string, error) {
	switch effective {
	case KindInt:
		i, ok := asInt(val)
		if !ok {
			return "", &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindInt}
		}
		return strconv.FormatInt(i, 10), nil
	case KindFloat:
		f, ok := asFloat(val)
		if !ok {
			return "", &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindFloat}
		}
		return formatFloat(f), nil
	default:
		s, ok := asString(val)
		if !ok {
			return "", &ErrTypeMismatch{Key: d.Key, Value: val, Want: KindString}
		}
		return s, nil
	}
}

// coerceRangeFromString converts a stored range string back to the typed
// value for the effective kind.
func coerceRangeFromString(d *Descriptor, stored string, effective Kind) (interface{}, error) {
	switch effective {
	case KindInt:
		i, err := strconv.ParseInt(stored, 10, 64)
		if err != nil {
			return nil, &ErrTypeMismatch{Key: d.Key, Value: stored, Want: KindInt}
		}
		return i, nil
	case KindFloat:
		f, err := strconv.ParseFloat(stored, 64)
		if err != nil {
			return nil, &ErrTypeMismatch{Key: d.Key, Value: stored, Want: KindFloat}
		}
		return f, nil
	default:
		return stored, nil
	}
}

// formatFloat renders a float in plain decimal notation, never exponential,
// with no trailing ".0" for values that are exact integers.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asString(val interface{}) (string, bool) {
	s, ok := val.(string)
	return s, ok
}

func asInt(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		if v == math.Trunc(v) {
			return int64(v), true
		}
		return 0, false
	case float32:
		f := float64(v)
		if f == math.Trunc(f) {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

package schema

// Enum is an immutable enumeration table: a closed set of canonical tag
// names, their underlying integer codes, and optional shorthand aliases.
//
// Tables are built once at package initialization and shared process-wide;
// lookups never mutate the table, so sharing across goroutines is safe.
//
// On read, the on-disk representation (string or integer) resolves to the
// canonical long-form name. On write, any of tag name, integer code, or
// alias is accepted and normalized; aliases are never written back.
// For example, a vertical datum set via "MLLW" is stored and returned as
// "meanLowerLowWater".
type Enum struct {
	name      string
	byName    map[string]int
	canonical map[int]string
}

// NewEnum builds an enumeration table. Canonical names are given in code
// order; aliases map shorthand names onto existing codes.
func NewEnum(name string, members map[string]int, aliases map[string]int) *Enum {
	e := &Enum{
		name:      name,
		byName:    make(map[string]int, len(members)+len(aliases)),
		canonical: make(map[int]string, len(members)),
	}
	for tag, code := range members {
		e.byName[tag] = code
		e.canonical[code] = tag
	}
	for alias, code := range aliases {
		e.byName[alias] = code
	}
	return e
}

// Name returns the enumeration's name, used in error messages.
func (e *Enum) Name() string {
	return e.name
}

// Lookup resolves a value to its canonical tag name and integer code.
// Accepted inputs are the canonical name, a documented alias, or the
// underlying integer (any Go integer type). Lookups are case-exact.
func (e *Enum) Lookup(val interface{}) (string, int, error) {
	switch v := val.(type) {
	case string:
		code, ok := e.byName[v]
		if !ok {
			return "", 0, &ErrUnknownEnumValue{Enum: e.name, Value: val}
		}
		return e.canonical[code], code, nil
	case int:
		return e.lookupCode(v)
	case int8:
		return e.lookupCode(int(v))
	case int16:
		return e.lookupCode(int(v))
	case int32:
		return e.lookupCode(int(v))
	case int64:
		return e.lookupCode(int(v))
	case uint8:
		return e.lookupCode(int(v))
	case uint16:
		return e.lookupCode(int(v))
	case uint32:
		return e.lookupCode(int(v))
	case uint64:
		return e.lookupCode(int(v))
	default:
		return "", 0, &ErrUnknownEnumValue{Enum: e.name, Value: val}
	}
}

func (e *Enum) lookupCode(code int) (string, int, error) {
	tag, ok := e.canonical[code]
	if !ok {
		return "", 0, &ErrUnknownEnumValue{Enum: e.name, Value: code}
	}
	return tag, code, nil
}

// Has reports whether val resolves to a member of the enumeration.
func (e *Enum) Has(val interface{}) bool {
	_, _, err := e.Lookup(val)
	return err == nil
}

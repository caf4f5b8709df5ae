package schema

// AttrSet is the typed attribute store for one node: a descriptor registry
// plus the current values, keyed by storage key. Values are held in their
// canonical stored form (see coerceValue) so writing a node is a plain
// iteration over the registry's write order.
type AttrSet struct {
	descs  *Set
	values map[string]interface{}
}

// NewAttrSet builds an empty attribute store over a descriptor registry.
func NewAttrSet(descs *Set) *AttrSet {
	return &AttrSet{
		descs:  descs,
		values: make(map[string]interface{}),
	}
}

// Descriptors returns the underlying registry.
func (a *AttrSet) Descriptors() *Set {
	return a.descs
}

// Set coerces val per the descriptor for key and stores it. Unknown keys
// and uncoercible values are rejected; nothing is stored on error.
func (a *AttrSet) Set(key string, val interface{}) error {
	d, ok := a.descs.Lookup(key)
	if !ok {
		return &ErrStructure{Reason: "unknown attribute " + key}
	}
	effective, err := a.effectiveKind(d)
	if err != nil {
		return err
	}
	stored, err := coerceValue(d, val, effective)
	if err != nil {
		return err
	}
	if d.Kind == KindRange {
		s, err := coerceRangeToString(d, stored, effective)
		if err != nil {
			return err
		}
		stored = s
	}
	a.values[key] = stored
	return nil
}

// Get returns the stored value for key. Enumeration attributes resolve to
// their canonical tag name regardless of the on-disk encoding; range
// attributes come back as their typed value under the current sibling type
// classification.
func (a *AttrSet) Get(key string) (interface{}, bool) {
	d, ok := a.descs.Lookup(key)
	if !ok {
		return nil, false
	}
	v, ok := a.values[key]
	if !ok {
		return nil, false
	}
	if d.Kind == KindEnum && d.Enum != nil {
		if tag, _, err := d.Enum.Lookup(v); err == nil {
			return tag, true
		}
	}
	if d.Kind == KindRange {
		effective, err := a.effectiveKind(d)
		if err != nil {
			return v, true
		}
		if s, isStr := v.(string); isStr {
			if typed, err := coerceRangeFromString(d, s, effective); err == nil {
				return typed, true
			}
		}
	}
	return v, true
}

// GetString returns the stored value rendered as its external string form,
// or "" when unset. Useful for feature information rows, where every
// component is a string regardless of classified type.
func (a *AttrSet) GetString(key string) string {
	v, ok := a.values[key]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case int64:
		return formatFloat(float64(s))
	case float64:
		return formatFloat(s)
	case bool:
		if s {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Has reports whether key currently holds a value.
func (a *AttrSet) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Unset removes the value for key. Required attributes cannot be unset.
func (a *AttrSet) Unset(key string) error {
	d, ok := a.descs.Lookup(key)
	if !ok {
		return &ErrStructure{Reason: "unknown attribute " + key}
	}
	if d.Required {
		return &ErrRequiredAttribute{Key: key}
	}
	delete(a.values, key)
	return nil
}

// CreateDefault sets key to its descriptor default, overwriting any current
// value. Descriptors with no default leave the attribute unset.
func (a *AttrSet) CreateDefault(key string) error {
	d, ok := a.descs.Lookup(key)
	if !ok {
		return &ErrStructure{Reason: "unknown attribute " + key}
	}
	if d.Default == nil {
		delete(a.values, key)
		return nil
	}
	return a.Set(key, d.Default())
}

// InitializeDefaults applies descriptor defaults across the whole registry.
// With overwrite false, attributes that already hold a value are left alone.
func (a *AttrSet) InitializeDefaults(overwrite bool) error {
	for _, key := range a.descs.Keys() {
		if !overwrite && a.Has(key) {
			continue
		}
		if err := a.CreateDefault(key); err != nil {
			return err
		}
	}
	return nil
}

// MissingRequired returns the storage keys of required attributes that hold
// no value, in registry order.
func (a *AttrSet) MissingRequired() []string {
	var missing []string
	for _, key := range a.descs.Keys() {
		d, _ := a.descs.Lookup(key)
		if d.Required && !a.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// effectiveKind resolves a descriptor's kind, following RangeOf to the
// sibling type-classification attribute for dynamically typed ranges. A
// range whose sibling is unset classifies as string.
func (a *AttrSet) effectiveKind(d *Descriptor) (Kind, error) {
	if d.Kind != KindRange {
		return d.Kind, nil
	}
	if d.RangeOf == "" {
		return KindString, nil
	}
	if _, ok := a.descs.Lookup(d.RangeOf); !ok {
		return 0, &ErrStructure{Reason: "range attribute " + d.Key + " references unknown sibling " + d.RangeOf}
	}
	code, ok := a.values[d.RangeOf]
	if !ok {
		return KindString, nil
	}
	s, isStr := code.(string)
	if !isStr {
		return KindString, nil
	}
	return ClassifyTypeCode(s), nil
}

package schema

// Descriptor binds one logical property to its on-disk storage key,
// logical type, default-value constructor and optional/required status.
// The storage key is distinct from any in-memory identifier so it may
// carry characters illegal in a Go name (for example "uom.name" or
// "sequencingRule.type").
type Descriptor struct {
	// Key is the attribute name in the container.
	Key string

	// Kind is the logical type used for coercion.
	Kind Kind

	// Required marks specification-mandated fields: they cannot be
	// unset, and they must hold a value when the owning node is written.
	Required bool

	// Enum is the enumeration table for KindEnum descriptors.
	Enum *Enum

	// EnumAsInt selects the integer external encoding for an
	// enumeration field instead of the canonical long-form string.
	EnumAsInt bool

	// RangeOf names the sibling attribute whose type-classification
	// code determines the effective kind of a KindRange descriptor.
	RangeOf string

	// Default constructs the product-mandated initial value, or nil
	// if the field has no default.
	Default func() interface{}
}

// Set is an ordered, table-driven descriptor registry for one schema type.
// Registration order is write order.
type Set struct {
	byKey map[string]*Descriptor
	order []string
}

// NewSet builds a registry from descriptors in write order.
func NewSet(descs ...Descriptor) *Set {
	s := &Set{byKey: make(map[string]*Descriptor, len(descs))}
	for i := range descs {
		d := descs[i]
		if _, dup := s.byKey[d.Key]; dup {
			continue
		}
		s.byKey[d.Key] = &d
		s.order = append(s.order, d.Key)
	}
	return s
}

// Merge returns a new registry combining this set with additional fragments,
// in order. Shared attribute groups (bounding box, grid origin, grid
// spacing, sequencing rule) are composed this way at registration time
// rather than through type hierarchies; a later fragment never overrides an
// earlier key.
func (s *Set) Merge(fragments ...*Set) *Set {
	merged := &Set{byKey: make(map[string]*Descriptor, len(s.order))}
	add := func(src *Set) {
		for _, key := range src.order {
			if _, dup := merged.byKey[key]; dup {
				continue
			}
			merged.byKey[key] = src.byKey[key]
			merged.order = append(merged.order, key)
		}
	}
	add(s)
	for _, f := range fragments {
		add(f)
	}
	return merged
}

// Lookup returns the descriptor registered for a storage key.
func (s *Set) Lookup(key string) (*Descriptor, bool) {
	d, ok := s.byKey[key]
	return d, ok
}

// Keys returns the storage keys in write order.
func (s *Set) Keys() []string {
	return s.order
}

// Len returns the number of registered descriptors.
func (s *Set) Len() int {
	return len(s.order)
}

// Package schema implements the attribute-mapping engine shared by all
// S-100 product writers: per-field descriptors binding logical names to
// on-disk storage keys, bidirectional type coercion between logical values
// and their container encoding, and numbered repeated-instance containers.
//
// The package is deliberately free of any I/O; a populated schema tree is
// flushed to a container through the s100 write orchestrator.
package schema

// Kind is the logical type of an attribute value.
type Kind int

const (
	// KindString is a character string attribute.
	KindString Kind = iota

	// KindInt is a signed integer attribute.
	KindInt

	// KindFloat is a floating point attribute.
	KindFloat

	// KindBool is a boolean attribute (encoded as 0/1 in the container).
	KindBool

	// KindEnum is a member of a fixed closed set of tags.
	// The descriptor carries the enumeration table.
	KindEnum

	// KindDate is a calendar date, encoded as "YYYYMMDD".
	KindDate

	// KindTime is a time of day, encoded as "HHMMSSZ".
	KindTime

	// KindDateTime is a combined date and time, encoded as
	// "YYYYMMDDTHHMMSSZ".
	KindDateTime

	// KindChunk is a chunk-geometry attribute: an ordered tuple of
	// positive integers canonicalized to a comma-joined string
	// (for example "150,200").
	KindChunk

	// KindRange is a dynamically typed attribute (fill value, lower or
	// upper bound) whose effective type is inferred at coercion time
	// from a sibling type-classification attribute. Stored as a string.
	KindRange

	// KindStringList is an ordered list of strings (axis names,
	// feature codes).
	KindStringList

	// KindFloatList is an ordered list of floats (origin coordinates,
	// grid envelope corners).
	KindFloatList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enumeration"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindChunk:
		return "chunking"
	case KindRange:
		return "range"
	case KindStringList:
		return "string list"
	case KindFloatList:
		return "float list"
	default:
		return "unknown"
	}
}

package schema

import (
	"fmt"
)

// ErrTypeMismatch indicates a value incompatible with a descriptor's logical type
type ErrTypeMismatch struct {
	Key   string
	Value interface{}
	Want  Kind
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("attribute %q: value %v (%T) is not convertible to %v",
		e.Key, e.Value, e.Value, e.Want)
}

// ErrRequiredAttribute indicates an unset attempt on a required attribute,
// or a required attribute missing at write time
type ErrRequiredAttribute struct {
	Key  string
	Node string // container path of the owning node, when known
}

func (e *ErrRequiredAttribute) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("required attribute %q missing on %s", e.Key, e.Node)
	}
	return fmt.Sprintf("attribute %q is required and cannot be unset", e.Key)
}

// ErrUnknownEnumValue indicates a value outside an enumeration's closed set
type ErrUnknownEnumValue struct {
	Enum  string
	Value interface{}
}

func (e *ErrUnknownEnumValue) Error() string {
	return fmt.Sprintf("enumeration %s: no member matching %v", e.Enum, e.Value)
}

// ErrInvalidTemporal indicates an unparsable date or time value
type ErrInvalidTemporal struct {
	Value string
	Want  Kind
}

func (e *ErrInvalidTemporal) Error() string {
	return fmt.Sprintf("cannot parse %q as %v", e.Value, e.Want)
}

// ErrStructure indicates a malformed numbered-instance name or a missing
// expected child in the container hierarchy
type ErrStructure struct {
	Path   string
	Reason string
}

func (e *ErrStructure) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("structure error at %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("structure error: %s", e.Reason)
}

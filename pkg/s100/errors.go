package s100

import (
	"fmt"
)

// ErrUnknownFeature indicates a feature code present in the feature
// information table with no matching feature container at the root, even
// after retrying with trailing NUL padding stripped.
type ErrUnknownFeature struct {
	Code string
}

func (e *ErrUnknownFeature) Error() string {
	return fmt.Sprintf("no feature container matching code %q", e.Code)
}

// ErrDuplicateFeature indicates a feature code registered twice on the same
// feature information table or root.
type ErrDuplicateFeature struct {
	Code string
}

func (e *ErrDuplicateFeature) Error() string {
	return fmt.Sprintf("feature %q already registered", e.Code)
}

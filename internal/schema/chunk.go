package schema

import (
	"strconv"
	"strings"
)

// ChunkShape is the on-disk tiling geometry of a multidimensional value
// array: one positive integer per array dimension. The container layer
// chooses it; the schema engine only records and propagates it.
type ChunkShape []uint64

// String canonicalizes the shape to the comma-joined attribute form,
// for example "150,200".
func (c ChunkShape) String() string {
	parts := make([]string, len(c))
	for i, d := range c {
		parts[i] = strconv.FormatUint(d, 10)
	}
	return strings.Join(parts, ",")
}

// ParseChunkShape parses the comma-joined attribute form back to a shape.
func ParseChunkShape(s string) (ChunkShape, error) {
	if s == "" {
		return nil, &ErrStructure{Reason: "empty chunking attribute"}
	}
	parts := strings.Split(s, ",")
	shape := make(ChunkShape, len(parts))
	for i, p := range parts {
		d, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || d == 0 {
			return nil, &ErrStructure{Reason: "invalid chunking attribute " + strconv.Quote(s)}
		}
		shape[i] = d
	}
	return shape, nil
}

// coerceChunk accepts a pre-built comma-joined string or an iterable of
// integers and canonicalizes to the comma-joined string form.
func coerceChunk(val interface{}) (string, error) {
	switch v := val.(type) {
	case string:
		if _, err := ParseChunkShape(v); err != nil {
			return "", err
		}
		return v, nil
	case ChunkShape:
		return v.String(), nil
	case []uint64:
		return ChunkShape(v).String(), nil
	case []int:
		shape := make(ChunkShape, len(v))
		for i, d := range v {
			if d <= 0 {
				return "", &ErrTypeMismatch{Value: val, Want: KindChunk}
			}
			shape[i] = uint64(d)
		}
		return shape.String(), nil
	default:
		return "", &ErrTypeMismatch{Value: val, Want: KindChunk}
	}
}

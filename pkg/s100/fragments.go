package s100

import (
	"github.com/beetlebugorg/s102/internal/schema"
)

// Shared descriptor fragments, merged into schema registries at registration
// time. Several feature-container and feature-instance variants carry the
// same attribute groups (bounding box, grid origin, grid spacing, sequencing
// rule); composing them as fragments keeps each variant's registry a flat
// merge instead of a type hierarchy.

// BoundingBoxFragment covers the geographic extent attributes of S-100
// Table 10c-6.
func BoundingBoxFragment() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "westBoundLongitude", Kind: schema.KindFloat},
		schema.Descriptor{Key: "eastBoundLongitude", Kind: schema.KindFloat},
		schema.Descriptor{Key: "southBoundLatitude", Kind: schema.KindFloat},
		schema.Descriptor{Key: "northBoundLatitude", Kind: schema.KindFloat},
	)
}

// GridOriginFragment covers the grid reference corner.
func GridOriginFragment() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "gridOriginLongitude", Kind: schema.KindFloat},
		schema.Descriptor{Key: "gridOriginLatitude", Kind: schema.KindFloat},
		schema.Descriptor{Key: "gridOriginVertical", Kind: schema.KindFloat},
	)
}

// GridSpacingFragment covers per-axis cell sizes.
func GridSpacingFragment() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "gridSpacingLongitudinal", Kind: schema.KindFloat},
		schema.Descriptor{Key: "gridSpacingLatitudinal", Kind: schema.KindFloat},
		schema.Descriptor{Key: "gridSpacingVertical", Kind: schema.KindFloat},
	)
}

// SequencingRuleFragment covers the grid traversal declaration. The type
// defaults to linear and the scan direction to the S-100 default axis order.
func SequencingRuleFragment() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "sequencingRule.type", Kind: schema.KindEnum,
			Enum: SequencingRuleType, EnumAsInt: true,
			Default: func() interface{} { return "linear" }},
		schema.Descriptor{Key: "sequencingRule.scanDirection", Kind: schema.KindString,
			Default: func() interface{} { return DefaultScanDirection }},
	)
}

// StartSequenceFragment covers the grid start corner (data coding formats
// 2, 5 and 6).
func StartSequenceFragment() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "startSequence", Kind: schema.KindString,
			Default: func() interface{} { return DefaultStartSequence }},
	)
}

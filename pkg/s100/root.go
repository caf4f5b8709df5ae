package s100

import (
	"github.com/beetlebugorg/s102/internal/schema"
)

// Schema registries for the fixed S-100 hierarchy levels. Each registry is
// built fresh per call so product packages can merge their own additions
// without aliasing a shared table.

// RootSchema covers the root group attributes of S-100 Table 10c-6: the
// geographic extent plus datum, issue date/time and product identity.
func RootSchema() *schema.Set {
	return BoundingBoxFragment().Merge(schema.NewSet(
		schema.Descriptor{Key: "productSpecification", Kind: schema.KindString, Required: true},
		schema.Descriptor{Key: "issueDate", Kind: schema.KindDate},
		schema.Descriptor{Key: "issueTime", Kind: schema.KindTime},
		schema.Descriptor{Key: "horizontalDatumReference", Kind: schema.KindString,
			Default: func() interface{} { return HorizontalDatumReference }},
		schema.Descriptor{Key: "horizontalDatumValue", Kind: schema.KindInt},
		schema.Descriptor{Key: "epoch", Kind: schema.KindString},
		schema.Descriptor{Key: "geographicIdentifier", Kind: schema.KindString},
		schema.Descriptor{Key: "verticalDatum", Kind: schema.KindEnum,
			Enum: VerticalDatum, EnumAsInt: true},
		schema.Descriptor{Key: "metadata", Kind: schema.KindString},
	))
}

// FeatureContainerSchema covers the feature container group of S-100
// Table 10c-9 for data coding format 2 (regularly gridded): the base
// container attributes plus interpolation and sequencing rule.
func FeatureContainerSchema() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "axisNames", Kind: schema.KindStringList},
		schema.Descriptor{Key: "dataCodingFormat", Kind: schema.KindEnum,
			Enum: DataCodingFormat, EnumAsInt: true,
			Default: func() interface{} { return 2 }},
		schema.Descriptor{Key: "dimension", Kind: schema.KindInt,
			Default: func() interface{} { return 2 }},
		schema.Descriptor{Key: "commonPointRule", Kind: schema.KindEnum,
			Enum: CommonPointRule, EnumAsInt: true},
		schema.Descriptor{Key: "horizontalPositionUncertainty", Kind: schema.KindFloat},
		schema.Descriptor{Key: "verticalUncertainty", Kind: schema.KindFloat},
		schema.Descriptor{Key: "timeUncertainty", Kind: schema.KindFloat},
		schema.Descriptor{Key: "numInstances", Kind: schema.KindInt},
		schema.Descriptor{Key: "interpolationType", Kind: schema.KindEnum,
			Enum: InterpolationType, EnumAsInt: true},
	).Merge(SequencingRuleFragment())
}

// FeatureInstanceSchema covers the feature instance group of S-100
// Table 10c-12 for data coding format 2: geographic extent, vertical
// extent, group bookkeeping and the grid georeferencing fragments.
func FeatureInstanceSchema() *schema.Set {
	return BoundingBoxFragment().Merge(
		schema.NewSet(
			schema.Descriptor{Key: "verticalExtent.minimumZ", Kind: schema.KindFloat},
			schema.Descriptor{Key: "verticalExtent.maximumZ", Kind: schema.KindFloat},
			schema.Descriptor{Key: "numGRP", Kind: schema.KindInt},
			schema.Descriptor{Key: "instanceChunking", Kind: schema.KindChunk},
			schema.Descriptor{Key: "numberOfTimes", Kind: schema.KindInt},
			schema.Descriptor{Key: "timeRecordInterval", Kind: schema.KindInt},
			schema.Descriptor{Key: "dateTimeOfFirstRecord", Kind: schema.KindDateTime},
			schema.Descriptor{Key: "dateTimeOfLastRecord", Kind: schema.KindDateTime},
		),
		GridOriginFragment(),
		GridSpacingFragment(),
		StartSequenceFragment(),
		schema.NewSet(
			schema.Descriptor{Key: "numPointsLongitudinal", Kind: schema.KindInt},
			schema.Descriptor{Key: "numPointsLatitudinal", Kind: schema.KindInt},
			schema.Descriptor{Key: "numPointsVertical", Kind: schema.KindInt},
		),
	)
}

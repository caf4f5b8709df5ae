package s100

import (
	"github.com/beetlebugorg/s102/internal/schema"
)

// Enumeration tables from S-100 Part 10c. Tables are immutable and shared
// process-wide. Shorthand aliases (MLLW, MSL, ...) are accepted on write and
// resolved to the official long-form name.

// VerticalDatum lists the vertical datums of S-100 Table 10c-24.
var VerticalDatum = schema.NewEnum("verticalDatum",
	map[string]int{
		"meanLowWaterSprings":               1,
		"meanLowerLowWaterSprings":          2,
		"meanSeaLevel":                      3,
		"lowestLowWater":                    4,
		"meanLowWater":                      5,
		"lowestLowWaterSprings":             6,
		"approximateMeanLowWaterSprings":    7,
		"indianSpringLowWater":              8,
		"lowWaterSprings":                   9,
		"approximateLowestAstronomicalTide": 10,
		"nearlyLowestLowWater":              11,
		"meanLowerLowWater":                 12,
		"lowWater":                          13,
		"approximateMeanLowWater":           14,
		"approximateMeanLowerLowWater":      15,
		"meanHighWater":                     16,
		"meanHighWaterSprings":              17,
		"highWater":                         18,
		"approximateMeanSeaLevel":           19,
		"highWaterSprings":                  20,
		"meanHigherHighWater":               21,
		"equinoctialSpringLowWater":         22,
		"lowestAstronomicalTide":            23,
		"localDatum":                        24,
		"internationalGreatLakesDatum1985":  25,
		"meanWaterLevel":                    26,
		"lowerLowWaterLargeTide":            27,
		"higherHighWaterLargeTide":          28,
		"nearlyHighestHighWater":            29,
		"highestAstronomicalTide":           30,
	},
	map[string]int{
		"MLWS": 1,
		"MSL":  3,
		"MLW":  5,
		"MLLW": 12,
		"LW":   13,
		"MHW":  16,
		"MHWS": 17,
		"MHHW": 21,
		"LAT":  23,
		"HAT":  30,
	})

// DataCodingFormat lists the coverage encodings of S-100 Table 10c-4.
// The official tag names contain spaces; single-word aliases are accepted.
var DataCodingFormat = schema.NewEnum("dataCodingFormat",
	map[string]int{
		"Time series at fixed stations": 1,
		"Regularly-gridded arrays":      2,
		"Ungeorectified gridded arrays": 3,
		"Moving platform":               4,
		"Irregular grid":                5,
		"Variable cell size":            6,
		"TIN":                           7,
	},
	map[string]int{
		"TIME":           1,
		"REGULAR":        2,
		"UNGEORECTIFIED": 3,
		"MOVING":         4,
		"IRREGULAR":      5,
		"VARIABLE":       6,
	})

// InterpolationType lists the CV_InterpolationMethod codes (ISO 19123
// extension).
var InterpolationType = schema.NewEnum("interpolationType",
	map[string]int{
		"nearestneighbor": 1,
		"linear":          2,
		"quadratic":       3,
		"cubic":           4,
		"bilinear":        5,
		"biquadratic":     6,
		"bicubic":         7,
		"lostarea":        8,
		"barycentric":     9,
		"discrete":        10,
	}, nil)

// CommonPointRule lists the rules for coincident domain points.
var CommonPointRule = schema.NewEnum("commonPointRule",
	map[string]int{
		"average": 1,
		"low":     2,
		"high":    3,
		"all":     4,
	}, nil)

// SequencingRuleType lists the grid traversal orders of S-100 Table 10c-20.
var SequencingRuleType = schema.NewEnum("sequencingRule.type",
	map[string]int{
		"linear":          1,
		"boustrophedonic": 2,
		"CantorDiagonal":  3,
		"spiral":          4,
		"Morton":          5,
		"Hilbert":         6,
	}, nil)

// Fixed attribute values mandated by S-100.
const (
	HorizontalDatumReference = "EPSG"
	DefaultScanDirection     = "longitude,latitude"
	DefaultStartSequence     = "0,0"
)

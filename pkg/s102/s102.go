// Package s102 writes IHO S-102 bathymetric surface products: regularly
// gridded depth and uncertainty coverages in the S-100 hierarchical
// container layout, with the Group_F feature information table and chunk
// geometry metadata filled per the product specification.
//
// A File is assembled in memory from grids and georeferencing metadata,
// then flushed to an HDF5 file:
//
//	f, err := s102.FromArraysWithMetadata(depth, uncertainty, md, s102.DefaultGridOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := f.WriteFile("surface.h5"); err != nil {
//	    log.Fatal(err)
//	}
package s102

import (
	"github.com/beetlebugorg/s102/internal/container"
	"github.com/beetlebugorg/s102/internal/schema"
	"github.com/beetlebugorg/s102/pkg/s100"
)

// Fixed names and bounds from the S-102 product specification.
const (
	BathymetryCoverageName   = "BathymetryCoverage"
	TrackingListCoverageName = "TrackingListCoverage"

	DepthName       = "depth"
	UncertaintyName = "uncertainty"

	ProductSpecification = "INT.IHO.S-102.2.0"

	DepthFillValue = 1000000.0
	DepthLower     = -12000.0
	DepthUpper     = 12000.0
	DepthUnits     = "metres"
	RangeClosure   = "closedInterval"
)

// GroupSchema covers the per-group descriptive attributes of a bathymetry
// data group (S-102 Table 12.5): value extrema, display scales, grid
// dimension, and the flattened origin and extent corners.
func GroupSchema() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "minimumDepth", Kind: schema.KindFloat},
		schema.Descriptor{Key: "maximumDepth", Kind: schema.KindFloat},
		schema.Descriptor{Key: "minimumUncertainty", Kind: schema.KindFloat},
		schema.Descriptor{Key: "maximumUncertainty", Kind: schema.KindFloat},
		schema.Descriptor{Key: "minimumDisplayScale", Kind: schema.KindInt},
		schema.Descriptor{Key: "maximumDisplayScale", Kind: schema.KindInt},
		schema.Descriptor{Key: "dimension", Kind: schema.KindInt,
			Default: func() interface{} { return 2 }},
		schema.Descriptor{Key: "origin", Kind: schema.KindFloatList},
		schema.Descriptor{Key: "extent", Kind: schema.KindFloatList},
	)
}

// File is an S-102 product being assembled: the S-100 root with the
// bathymetry and tracking list containers registered and the Group_F rows
// the specification mandates.
type File struct {
	root     *s100.Root
	coverage *schema.Node
	tracking *schema.Node
}

// New creates an empty S-102 file structure with every mandated default
// filled in: the product identity, the feature information rows for depth
// and uncertainty, the tracking list rows, and the bathymetry container
// defaults.
func New() (*File, error) {
	root := s100.NewRoot()
	root.GroupF().WriteFeatureName = true

	if err := root.Attrs().Set("productSpecification", ProductSpecification); err != nil {
		return nil, err
	}

	cov, err := root.AddFeatureContainer(BathymetryCoverageName, s100.FeatureContainerSchema())
	if err != nil {
		return nil, err
	}
	if err := cov.Attrs().InitializeDefaults(false); err != nil {
		return nil, err
	}
	covSettings := map[string]interface{}{
		"axisNames":                    []string{"Longitude", "Latitude"},
		"sequencingRule.scanDirection": "Longitude, Latitude",
		"commonPointRule":              "average",
		"interpolationType":            "nearestneighbor",
		"numInstances":                 1,
	}
	for key, val := range covSettings {
		if err := cov.Attrs().Set(key, val); err != nil {
			return nil, err
		}
	}

	trk, err := root.AddFeatureContainer(TrackingListCoverageName, s100.FeatureContainerSchema())
	if err != nil {
		return nil, err
	}
	if err := trk.Attrs().InitializeDefaults(false); err != nil {
		return nil, err
	}

	f := &File{root: root, coverage: cov, tracking: trk}
	if err := f.createFeatureInformation(); err != nil {
		return nil, err
	}
	return f, nil
}

// createFeatureInformation fills the Group_F rows: depth and uncertainty
// for the bathymetry coverage, and the five fixed tracking list columns.
func (f *File) createFeatureInformation() error {
	gf := f.root.GroupF()

	for _, code := range []string{DepthName, UncertaintyName} {
		row, err := gf.AppendRow(BathymetryCoverageName)
		if err != nil {
			return err
		}
		settings := map[string]interface{}{
			"code":      code,
			"name":      code,
			"uom.name":  DepthUnits,
			"datatype":  schema.H5TNativeFloat,
			"fillValue": DepthFillValue,
			"lower":     DepthLower,
			"upper":     DepthUpper,
			"closure":   RangeClosure,
		}
		// datatype must land before the range components so they
		// classify as float
		if err := row.Set("datatype", schema.H5TNativeFloat); err != nil {
			return err
		}
		for key, val := range settings {
			if err := row.Set(key, val); err != nil {
				return err
			}
		}
	}

	trackingRows := []struct {
		code string
		name string
		uom  string
	}{
		{"X", "X", "N/A"},
		{"Y", "Y", "N/A"},
		{"originalValue", "Original Value", ""},
		{"trackCode", "Track Code", "N/A"},
		{"listSeries", "List Series", "N/A"},
	}
	for _, tr := range trackingRows {
		row, err := gf.AppendRow(TrackingListCoverageName)
		if err != nil {
			return err
		}
		if err := row.Set("code", tr.code); err != nil {
			return err
		}
		if err := row.Set("name", tr.name); err != nil {
			return err
		}
		if tr.uom != "" {
			if err := row.Set("uom.name", tr.uom); err != nil {
				return err
			}
		}
	}
	return nil
}

// Root exposes the underlying S-100 root for direct attribute access.
func (f *File) Root() *s100.Root {
	return f.root
}

// Coverage returns the bathymetry feature container node.
func (f *File) Coverage() *schema.Node {
	return f.coverage
}

// Write flushes the assembled product to a store, running the full
// two-pass write protocol.
func (f *File) Write(st container.Store) error {
	return f.root.Write(st)
}

// WriteFile writes the product to an HDF5 file at path. The returned
// report lists group attributes the HDF5 writer could not persist.
func (f *File) WriteFile(path string) (*container.Report, error) {
	st := container.NewMemStore()
	if err := f.Write(st); err != nil {
		return nil, err
	}
	return container.WriteFile(path, st)
}

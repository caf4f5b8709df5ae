package s102

import (
	"github.com/beetlebugorg/s102/internal/container"
	"github.com/beetlebugorg/s102/internal/schema"
	"github.com/beetlebugorg/s102/pkg/s100"
)

// GridMetadata georeferences a grid: the reference corner node, per-axis
// resolution, and the descriptive fields carried to the root. A negative
// resolution component flips the grid along that axis with the origin
// adjusted accordingly.
type GridMetadata struct {
	// Origin is the (x, y) position of the reference corner node.
	Origin [2]float64

	// Resolution is the (x, y) cell size. Grids are node based: the far
	// corner sits at origin + resolution x (count - 1).
	Resolution [2]float64

	// HorizontalDatumReference defaults to "EPSG" when empty.
	HorizontalDatumReference string

	// HorizontalDatumValue is validated against the product
	// specification's allowed EPSG set when nonzero.
	HorizontalDatumValue int

	Epoch                string
	GeographicIdentifier string
	IssueDate            string
	MetadataFile         string
}

// GridOptions controls grid ingestion.
type GridOptions struct {
	// NoData marks empty cells in the input grids; these are excluded
	// from the extrema and rewritten to the declared fill value.
	NoData float64

	// FlipX and FlipY mirror the grids before storage.
	FlipX bool
	FlipY bool

	// Compression is the deflate level for the values dataset, 0 for
	// none.
	Compression int

	// Chunks overrides the container's default chunk geometry for the
	// values dataset.
	Chunks []uint64
}

// DefaultGridOptions returns the default ingestion settings.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		NoData: DepthFillValue,
	}
}

// FromArrays creates an S-102 file from equal-shape depth and uncertainty
// grids. A nil uncertainty grid is treated as all-nodata. The first grid
// index runs along the X axis, the second along Y.
func FromArrays(depth, uncertainty [][]float32, opts GridOptions) (*File, error) {
	f, err := New()
	if err != nil {
		return nil, err
	}
	if err := f.AddGrids(depth, uncertainty, opts); err != nil {
		return nil, err
	}
	return f, nil
}

// FromArraysWithMetadata creates an S-102 file from grids plus
// georeferencing metadata: the bounding box is derived from the origin and
// resolution, negative resolutions flip the corresponding axis, and the
// datum, axis names and descriptive root fields are filled from md.
func FromArraysWithMetadata(depth, uncertainty [][]float32, md GridMetadata, opts GridOptions) (*File, error) {
	f, err := New()
	if err != nil {
		return nil, err
	}
	if err := f.AddGridsWithMetadata(depth, uncertainty, md, opts); err != nil {
		return nil, err
	}
	return f, nil
}

// AddGrids ingests the grids into the file's first bathymetry coverage
// instance: populates the instance geometry counts, the data group's
// extrema and extent, and registers the packed values dataset.
func (f *File) AddGrids(depth, uncertainty [][]float32, opts GridOptions) error {
	nx := len(depth)
	if nx == 0 || len(depth[0]) == 0 {
		return &ErrEmptyGrid{Reason: "depth grid has a zero dimension"}
	}
	ny := len(depth[0])

	nodata := float32(opts.NoData)
	if uncertainty == nil {
		uncertainty = fullGrid(nx, ny, nodata)
	}
	ux := len(uncertainty)
	uy := 0
	if ux > 0 {
		uy = len(uncertainty[0])
	}
	if ux != nx || uy != ny {
		return &ErrShapeMismatch{
			DepthRows: nx, DepthCols: ny,
			UncertaintyRows: ux, UncertaintyCols: uy,
		}
	}
	for _, row := range depth {
		if len(row) != ny {
			return &ErrShapeMismatch{
				DepthRows: nx, DepthCols: len(row),
				UncertaintyRows: ux, UncertaintyCols: uy,
			}
		}
	}
	for _, row := range uncertainty {
		if len(row) != ny {
			return &ErrShapeMismatch{
				DepthRows: nx, DepthCols: ny,
				UncertaintyRows: ux, UncertaintyCols: len(row),
			}
		}
	}

	inst, instName, err := f.firstCoverageInstance()
	if err != nil {
		return err
	}
	instSettings := map[string]interface{}{
		"numGRP":                1,
		"numPointsLongitudinal": nx,
		"numPointsLatitudinal":  ny,
		"startSequence":         s100.DefaultStartSequence,
	}
	for key, val := range instSettings {
		if err := inst.Attrs().Set(key, val); err != nil {
			return err
		}
	}

	grp, grpName := inst.Instances("Group").AppendNew(GroupSchema())
	if err := grp.Attrs().InitializeDefaults(false); err != nil {
		return err
	}
	if err := grp.Attrs().Set("extent", []float64{0, 0, float64(nx), float64(ny)}); err != nil {
		return err
	}

	depthMin, depthMax, ok := gridExtrema(depth, nodata)
	if !ok {
		return &ErrEmptyGrid{Reason: "depth grid holds no data cells"}
	}
	uncertMin, uncertMax, ok := gridExtrema(uncertainty, nodata)
	if !ok {
		// an all-nodata uncertainty grid is allowed; the extrema
		// collapse to the fill value
		uncertMin, uncertMax = DepthFillValue, DepthFillValue
	}
	grpSettings := map[string]interface{}{
		"minimumDepth":       depthMin,
		"maximumDepth":       depthMax,
		"minimumUncertainty": uncertMin,
		"maximumUncertainty": uncertMax,
	}
	for key, val := range grpSettings {
		if err := grp.Attrs().Set(key, val); err != nil {
			return err
		}
	}

	if opts.FlipX {
		depth = flipX(depth)
		uncertainty = flipX(uncertainty)
	}
	if opts.FlipY {
		depth = flipY(depth)
		uncertainty = flipY(uncertainty)
	}

	values := packValues(depth, uncertainty, nodata)
	var dsOpts []container.DatasetOption
	if opts.Chunks != nil {
		dsOpts = append(dsOpts, container.WithChunks(opts.Chunks...))
	}
	if opts.Compression > 0 {
		dsOpts = append(dsOpts, container.WithCompression(opts.Compression))
	}
	path := "/" + BathymetryCoverageName + "/" + instName + "/" + grpName + "/" + s100.ValuesDatasetName
	f.root.AddDataset(path, container.Array{
		Shape:   []uint64{uint64(nx), uint64(ny), 2},
		Data:    values,
		Columns: []string{DepthName, UncertaintyName},
	}, dsOpts...)
	return nil
}

// AddGridsWithMetadata ingests the grids and applies georeferencing: flips
// derived from negative resolutions, the node-based bounding box on root
// and instance, grid origin and spacing, datum validation and axis names.
func (f *File) AddGridsWithMetadata(depth, uncertainty [][]float32, md GridMetadata, opts GridOptions) error {
	resX, resY := md.Resolution[0], md.Resolution[1]
	opts.FlipX = resX < 0
	opts.FlipY = resY < 0

	if err := f.AddGrids(depth, uncertainty, opts); err != nil {
		return err
	}

	nx := len(depth)
	ny := len(depth[0])
	cornerX, cornerY := md.Origin[0], md.Origin[1]

	// node based: distance to the far corner is res x (n - 1)
	oppositeX := cornerX + resX*float64(nx-1)
	oppositeY := cornerY + resY*float64(ny-1)

	minX, maxX := order(cornerX, oppositeX)
	minY, maxY := order(cornerY, oppositeY)

	inst, _, err := f.firstCoverageInstance()
	if err != nil {
		return err
	}

	bbox := map[string]interface{}{
		"westBoundLongitude": minX,
		"eastBoundLongitude": maxX,
		"southBoundLatitude": minY,
		"northBoundLatitude": maxY,
	}
	for key, val := range bbox {
		if err := f.root.Attrs().Set(key, val); err != nil {
			return err
		}
		if err := inst.Attrs().Set(key, val); err != nil {
			return err
		}
	}
	instSettings := map[string]interface{}{
		"gridOriginLongitude":     minX,
		"gridOriginLatitude":      minY,
		"gridSpacingLongitudinal": abs(resX),
		"gridSpacingLatitudinal":  abs(resY),
	}
	for key, val := range instSettings {
		if err := inst.Attrs().Set(key, val); err != nil {
			return err
		}
	}

	grp, err := inst.Instances("Group").At(1)
	if err != nil {
		return err
	}
	if err := grp.Attrs().Set("origin", []float64{minX, minY}); err != nil {
		return err
	}

	datumRef := md.HorizontalDatumReference
	if datumRef == "" {
		datumRef = s100.HorizontalDatumReference
	}
	if err := f.root.Attrs().Set("horizontalDatumReference", datumRef); err != nil {
		return err
	}
	axes := []string{"Longitude", "Latitude"}
	if md.HorizontalDatumValue != 0 {
		if err := ValidateEPSG(md.HorizontalDatumValue); err != nil {
			return err
		}
		if err := f.root.Attrs().Set("horizontalDatumValue", md.HorizontalDatumValue); err != nil {
			return err
		}
		axes = AxisNames(md.HorizontalDatumValue)
	}
	if err := f.coverage.Attrs().Set("axisNames", axes); err != nil {
		return err
	}
	if err := f.coverage.Attrs().Set("sequencingRule.scanDirection", axes[0]+", "+axes[1]); err != nil {
		return err
	}

	rootSettings := map[string]string{
		"epoch":                md.Epoch,
		"geographicIdentifier": md.GeographicIdentifier,
		"issueDate":            md.IssueDate,
		"metadata":             md.MetadataFile,
	}
	for key, val := range rootSettings {
		if val == "" {
			continue
		}
		if err := f.root.Attrs().Set(key, val); err != nil {
			return err
		}
	}
	return nil
}

// firstCoverageInstance returns the coverage's instance 001, creating it on
// first use.
func (f *File) firstCoverageInstance() (*schema.Node, string, error) {
	list := f.coverage.Instances(BathymetryCoverageName)
	if list.Len() == 0 {
		node, name := list.AppendNew(s100.FeatureInstanceSchema())
		return node, name, nil
	}
	node, err := list.At(1)
	if err != nil {
		return nil, "", err
	}
	return node, schema.InstanceName(BathymetryCoverageName, 1), nil
}

// gridExtrema finds the minimum and maximum over cells not holding the
// nodata marker. ok is false when every cell is nodata.
func gridExtrema(grid [][]float32, nodata float32) (min, max float64, ok bool) {
	for _, row := range grid {
		for _, v := range row {
			if v == nodata {
				continue
			}
			f := float64(v)
			if !ok {
				min, max, ok = f, f, true
				continue
			}
			if f < min {
				min = f
			}
			if f > max {
				max = f
			}
		}
	}
	return min, max, ok
}

// packValues interleaves the grids into (depth, uncertainty) records with
// nodata cells rewritten to the declared fill value.
func packValues(depth, uncertainty [][]float32, nodata float32) [][][2]float32 {
	out := make([][][2]float32, len(depth))
	for i := range depth {
		row := make([][2]float32, len(depth[i]))
		for j := range depth[i] {
			d, u := depth[i][j], uncertainty[i][j]
			if d == nodata {
				d = DepthFillValue
			}
			if u == nodata {
				u = DepthFillValue
			}
			row[j] = [2]float32{d, u}
		}
		out[i] = row
	}
	return out
}

func fullGrid(nx, ny int, fill float32) [][]float32 {
	g := make([][]float32, nx)
	for i := range g {
		row := make([]float32, ny)
		for j := range row {
			row[j] = fill
		}
		g[i] = row
	}
	return g
}

func flipX(grid [][]float32) [][]float32 {
	out := make([][]float32, len(grid))
	for i := range grid {
		out[len(grid)-1-i] = grid[i]
	}
	return out
}

func flipY(grid [][]float32) [][]float32 {
	out := make([][]float32, len(grid))
	for i, row := range grid {
		r := make([]float32, len(row))
		for j, v := range row {
			r[len(row)-1-j] = v
		}
		out[i] = r
	}
	return out
}

func order(a, b float64) (min, max float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

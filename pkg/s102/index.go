package s102

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Bounds is a geographic query window.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CoverageEntry contains indexed metadata for a single S-102 product file.
type CoverageEntry struct {
	Path                 string
	GeoBounds            Bounds
	GeographicIdentifier string
	IssueDate            string
}

// Bounds method for the rtreego.Spatial interface.
func (e CoverageEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.GeoBounds.MinX, e.GeoBounds.MinY}
	lengths := []float64{
		e.GeoBounds.MaxX - e.GeoBounds.MinX,
		e.GeoBounds.MaxY - e.GeoBounds.MinY,
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// CoverageIndex provides fast spatial queries over a collection of S-102
// files. The index stores lightweight metadata per file (bounding box,
// identifier, issue date) in an R-tree, so viewport queries touch only the
// files that intersect the window.
type CoverageIndex struct {
	entries []CoverageEntry
	rtree   *rtreego.Rtree
}

// BuildIndex builds an index from already-loaded entries.
func BuildIndex(entries []CoverageEntry) *CoverageIndex {
	idx := &CoverageIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, e := range entries {
		idx.entries = append(idx.entries, e)
		idx.rtree.Insert(e)
	}
	return idx
}

// BuildIndexFromDir scans a directory tree for HDF5 products and indexes
// every file whose root metadata can be read. Files that fail to open or
// lack a bounding box are skipped.
func BuildIndexFromDir(root string) (*CoverageIndex, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".h5" || ext == ".hdf5" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no products found in %s", root)
	}

	idx := &CoverageIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, path := range paths {
		entry, err := readEntry(path)
		if err != nil {
			continue
		}
		idx.entries = append(idx.entries, entry)
		idx.rtree.Insert(entry)
	}
	if len(idx.entries) == 0 {
		return nil, fmt.Errorf("no products could be indexed in %s", root)
	}
	return idx, nil
}

// readEntry opens a product file and extracts the root metadata the index
// stores.
func readEntry(path string) (CoverageEntry, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return CoverageEntry{}, err
	}
	defer f.Close()

	entry := CoverageEntry{Path: path}
	west, err := readFloatAttr(f, "westBoundLongitude")
	if err != nil {
		return CoverageEntry{}, err
	}
	east, err := readFloatAttr(f, "eastBoundLongitude")
	if err != nil {
		return CoverageEntry{}, err
	}
	south, err := readFloatAttr(f, "southBoundLatitude")
	if err != nil {
		return CoverageEntry{}, err
	}
	north, err := readFloatAttr(f, "northBoundLatitude")
	if err != nil {
		return CoverageEntry{}, err
	}
	entry.GeoBounds = Bounds{MinX: west, MaxX: east, MinY: south, MaxY: north}

	if v, err := f.ReadAttr("/@geographicIdentifier"); err == nil {
		if s, ok := v.(string); ok {
			entry.GeographicIdentifier = s
		}
	}
	if v, err := f.ReadAttr("/@issueDate"); err == nil {
		if s, ok := v.(string); ok {
			entry.IssueDate = s
		}
	}
	return entry, nil
}

func readFloatAttr(f *hdf5.File, name string) (float64, error) {
	v, err := f.ReadAttr("/@" + name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("attribute %s is not numeric (%T)", name, v)
	}
}

// Query returns the entries whose bounding boxes intersect the window, in
// insertion order.
func (idx *CoverageIndex) Query(window Bounds) []CoverageEntry {
	point := rtreego.Point{window.MinX, window.MinY}
	lengths := []float64{window.MaxX - window.MinX, window.MaxY - window.MinY}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	hits := idx.rtree.SearchIntersect(rect)
	found := make(map[string]bool, len(hits))
	for _, h := range hits {
		found[h.(CoverageEntry).Path] = true
	}
	var out []CoverageEntry
	for _, e := range idx.entries {
		if found[e.Path] {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of indexed products.
func (idx *CoverageIndex) Len() int {
	return len(idx.entries)
}

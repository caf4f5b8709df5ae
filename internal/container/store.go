// Package container abstracts the hierarchical HDF5-style file the product
// writers target: groups addressed by absolute slash-separated paths,
// scalar attributes on groups and datasets, and chunked multidimensional
// datasets.
//
// MemStore is the authoritative implementation; a populated MemStore is
// materialized to an HDF5 file in one pass (see WriteFile).
package container

// Array is a dataset payload: an explicit shape plus the data as a nested
// Go slice whose nesting matches the shape. Columns optionally names the
// components of the innermost dimension for record-style datasets.
type Array struct {
	Shape   []uint64
	Data    interface{}
	Columns []string
}

// datasetOptions collects per-dataset settings.
type datasetOptions struct {
	chunks      []uint64
	compression int
}

// DatasetOption customizes dataset creation.
type DatasetOption func(*datasetOptions)

// WithChunks requests an explicit chunk geometry instead of the store's
// default policy.
func WithChunks(dims ...uint64) DatasetOption {
	return func(o *datasetOptions) {
		o.chunks = dims
	}
}

// WithCompression requests deflate compression at the given level.
func WithCompression(level int) DatasetOption {
	return func(o *datasetOptions) {
		o.compression = level
	}
}

// Store is the container surface the write orchestrator runs against.
type Store interface {
	// CreateGroup creates the group at path, along with any missing
	// ancestors. Creating an existing group is a no-op.
	CreateGroup(path string) error

	// SetAttr assigns a scalar attribute on the group or dataset at path.
	SetAttr(path, key string, val interface{}) error

	// DeleteAttr removes an attribute; deleting an absent attribute is a
	// no-op.
	DeleteAttr(path, key string) error

	// Attr reads back an attribute value.
	Attr(path, key string) (interface{}, bool)

	// WriteDataset creates the dataset at path and returns the chunk
	// geometry actually used, or nil for contiguous storage.
	WriteDataset(path string, arr Array, opts ...DatasetOption) ([]uint64, error)

	// ChunkShape reports the chunk geometry of an existing dataset.
	ChunkShape(path string) ([]uint64, bool)

	// Children lists the members of a group in creation order.
	Children(path string) ([]string, error)
}

package container

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// PendingAttr is a group attribute the HDF5 writer could not persist.
// The underlying library attaches attributes to datasets at creation time
// but has no write path for attributes on groups; callers needing a fully
// attributed file must post-process with external tooling.
type PendingAttr struct {
	Path  string
	Key   string
	Value interface{}
}

// Report summarizes a materialization pass.
type Report struct {
	Groups   int
	Datasets int

	// PendingGroupAttrs lists group attributes present in the store but
	// absent from the written file, in store order.
	PendingGroupAttrs []PendingAttr
}

// WriteFile materializes a populated MemStore to an HDF5 file at path.
// Groups and datasets are created in store order; dataset attributes ride
// along at creation, group attributes are reported back unpersisted.
func WriteFile(path string, m *MemStore) (*Report, error) {
	f, err := hdf5.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	rep := &Report{}
	if err := writeNode(f.Root(), m.root, "/", rep); err != nil {
		return nil, err
	}
	if err := f.Flush(); err != nil {
		return nil, fmt.Errorf("flushing %s: %w", path, err)
	}
	return rep, nil
}

func writeNode(g *hdf5.Group, n *memNode, path string, rep *Report) error {
	rep.Groups++
	for _, key := range n.attrOrder {
		rep.PendingGroupAttrs = append(rep.PendingGroupAttrs, PendingAttr{
			Path:  path,
			Key:   key,
			Value: n.attrs[key],
		})
	}

	for _, name := range n.childOrder {
		child := n.children[name]
		childPath := joinPath(path, name)
		if child.data != nil {
			if err := writeDataset(g, child); err != nil {
				return fmt.Errorf("writing dataset %s: %w", childPath, err)
			}
			rep.Datasets++
			continue
		}
		sub, err := g.CreateGroup(name)
		if err != nil {
			return fmt.Errorf("creating group %s: %w", childPath, err)
		}
		if err := writeNode(sub, child, childPath, rep); err != nil {
			return err
		}
	}
	return nil
}

func writeDataset(g *hdf5.Group, n *memNode) error {
	opts := make([]hdf5.DatasetOption, 0, 2+len(n.attrOrder))
	if n.chunks != nil {
		opts = append(opts, hdf5.WithChunks(n.chunks...))
	}
	if n.level > 0 {
		opts = append(opts, hdf5.WithCompression(n.level))
	}
	for _, key := range n.attrOrder {
		opts = append(opts, hdf5.WithAttribute(key, n.attrs[key]))
	}
	_, err := g.CreateDataset(n.name, n.data.Data, opts...)
	return err
}

func joinPath(base, name string) string {
	if base == "/" {
		return "/" + name
	}
	return base + "/" + name
}

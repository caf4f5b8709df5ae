package container

import (
	"fmt"
	"strings"
)

// defaultChunkCap caps each chunk dimension under the default policy.
// Datasets at or below the cap in every dimension become a single chunk.
const defaultChunkCap = 512

// MemStore is the in-memory container implementation. The write
// orchestrator populates one, tests assert against it directly, and
// WriteFile materializes it to an HDF5 file.
type MemStore struct {
	root *memNode
}

type memNode struct {
	name       string
	attrs      map[string]interface{}
	attrOrder  []string
	childOrder []string
	children   map[string]*memNode

	// dataset payload, nil for plain groups
	data   *Array
	chunks []uint64
	level  int
}

func newMemNode(name string) *memNode {
	return &memNode{
		name:     name,
		attrs:    make(map[string]interface{}),
		children: make(map[string]*memNode),
	}
}

// NewMemStore creates an empty store holding only the root group.
func NewMemStore() *MemStore {
	return &MemStore{root: newMemNode("")}
}

// splitPath normalizes an absolute path into its components; the root path
// "/" yields no components.
func splitPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("container: path %q is not absolute", path)
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "/"), nil
}

// lookup resolves an existing node.
func (m *MemStore) lookup(path string) (*memNode, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := m.root
	for _, p := range parts {
		child, ok := n.children[p]
		if !ok {
			return nil, fmt.Errorf("container: no object at %s", path)
		}
		n = child
	}
	return n, nil
}

// ensure resolves a node, creating missing intermediate groups.
func (m *MemStore) ensure(path string) (*memNode, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := m.root
	for _, p := range parts {
		child, ok := n.children[p]
		if !ok {
			if n.data != nil {
				return nil, fmt.Errorf("container: %s is a dataset, cannot hold %s", n.name, p)
			}
			child = newMemNode(p)
			n.children[p] = child
			n.childOrder = append(n.childOrder, p)
		}
		n = child
	}
	return n, nil
}

// CreateGroup creates path and any missing ancestors.
func (m *MemStore) CreateGroup(path string) error {
	n, err := m.ensure(path)
	if err != nil {
		return err
	}
	if n.data != nil {
		return fmt.Errorf("container: %s already exists as a dataset", path)
	}
	return nil
}

// SetAttr assigns an attribute on the object at path, which must exist.
func (m *MemStore) SetAttr(path, key string, val interface{}) error {
	n, err := m.lookup(path)
	if err != nil {
		return err
	}
	if _, ok := n.attrs[key]; !ok {
		n.attrOrder = append(n.attrOrder, key)
	}
	n.attrs[key] = val
	return nil
}

// DeleteAttr removes an attribute; absent attributes are ignored.
func (m *MemStore) DeleteAttr(path, key string) error {
	n, err := m.lookup(path)
	if err != nil {
		return err
	}
	if _, ok := n.attrs[key]; !ok {
		return nil
	}
	delete(n.attrs, key)
	for i, k := range n.attrOrder {
		if k == key {
			n.attrOrder = append(n.attrOrder[:i], n.attrOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Attr reads back an attribute value.
func (m *MemStore) Attr(path, key string) (interface{}, bool) {
	n, err := m.lookup(path)
	if err != nil {
		return nil, false
	}
	v, ok := n.attrs[key]
	return v, ok
}

// AttrKeys lists an object's attribute names in assignment order.
func (m *MemStore) AttrKeys(path string) []string {
	n, err := m.lookup(path)
	if err != nil {
		return nil
	}
	out := make([]string, len(n.attrOrder))
	copy(out, n.attrOrder)
	return out
}

// WriteDataset creates the dataset at path. Without an explicit WithChunks
// option the default policy applies: one chunk per dataset, each dimension
// capped at defaultChunkCap elements.
func (m *MemStore) WriteDataset(path string, arr Array, opts ...DatasetOption) ([]uint64, error) {
	var o datasetOptions
	for _, opt := range opts {
		opt(&o)
	}

	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("container: cannot write dataset at root")
	}
	parentPath := "/" + strings.Join(parts[:len(parts)-1], "/")
	parent, err := m.ensure(parentPath)
	if err != nil {
		return nil, err
	}
	name := parts[len(parts)-1]
	if _, exists := parent.children[name]; exists {
		return nil, fmt.Errorf("container: %s already exists", path)
	}

	chunks := o.chunks
	if chunks == nil {
		chunks = defaultChunks(arr.Shape)
	}
	if len(chunks) != 0 && len(chunks) != len(arr.Shape) {
		return nil, fmt.Errorf("container: chunk rank %d does not match dataset rank %d",
			len(chunks), len(arr.Shape))
	}

	ds := newMemNode(name)
	a := arr
	ds.data = &a
	ds.chunks = chunks
	ds.level = o.compression
	parent.children[name] = ds
	parent.childOrder = append(parent.childOrder, name)
	return chunks, nil
}

// defaultChunks derives the default chunk geometry for a shape. Scalar and
// zero-size datasets stay contiguous.
func defaultChunks(shape []uint64) []uint64 {
	if len(shape) == 0 {
		return nil
	}
	chunks := make([]uint64, len(shape))
	for i, d := range shape {
		if d == 0 {
			return nil
		}
		if d > defaultChunkCap {
			d = defaultChunkCap
		}
		chunks[i] = d
	}
	return chunks
}

// ChunkShape reports the chunk geometry recorded for a dataset.
func (m *MemStore) ChunkShape(path string) ([]uint64, bool) {
	n, err := m.lookup(path)
	if err != nil || n.data == nil || n.chunks == nil {
		return nil, false
	}
	out := make([]uint64, len(n.chunks))
	copy(out, n.chunks)
	return out, true
}

// Dataset returns the payload written at path.
func (m *MemStore) Dataset(path string) (*Array, bool) {
	n, err := m.lookup(path)
	if err != nil || n.data == nil {
		return nil, false
	}
	return n.data, true
}

// IsDataset reports whether path names a dataset rather than a group.
func (m *MemStore) IsDataset(path string) bool {
	n, err := m.lookup(path)
	return err == nil && n.data != nil
}

// Children lists group members in creation order.
func (m *MemStore) Children(path string) ([]string, error) {
	n, err := m.lookup(path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(n.childOrder))
	copy(out, n.childOrder)
	return out, nil
}

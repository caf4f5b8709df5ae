// Package s100 implements the generic S-100 hierarchy: the root group
// schema, feature containers with numbered instances and data groups, the
// Group_F feature information table, and the two-pass write protocol that
// discovers dataset chunk geometry after leaf data is written and patches
// it back into instance and feature information metadata.
//
// Product packages (s102) compose their schemas from the registries and
// fragments here, populate a Root, and flush it to a container.Store.
package s100

import (
	"strings"

	"github.com/beetlebugorg/s102/internal/container"
	"github.com/beetlebugorg/s102/internal/schema"
)

// ValuesDatasetName is the canonical name of the value array inside a data
// group; chunk discovery looks only for this name.
const ValuesDatasetName = "values"

type datasetEntry struct {
	arr  container.Array
	opts []container.DatasetOption
}

// Root models the top level of an S-100 file: global metadata, the feature
// information table and the named feature containers. Datasets are
// registered by absolute path and written after the attribute hierarchy.
type Root struct {
	node   *schema.Node
	groupF *GroupF

	stems    []string
	datasets map[string]*datasetEntry
	dsOrder  []string
}

// NewRoot creates an empty root over the standard S-100 root schema.
func NewRoot() *Root {
	return &Root{
		node:     schema.NewNode(RootSchema()),
		groupF:   NewGroupF(),
		datasets: make(map[string]*datasetEntry),
	}
}

// Attrs returns the root group's attribute set.
func (r *Root) Attrs() *schema.AttrSet {
	return r.node.Attrs()
}

// GroupF returns the feature information table.
func (r *Root) GroupF() *GroupF {
	return r.groupF
}

// AddFeatureContainer registers a feature container at the root and in the
// feature information table's code listing. Instances live in the returned
// node's instance list under the container's own stem.
func (r *Root) AddFeatureContainer(name string, descs *schema.Set) (*schema.Node, error) {
	if _, dup := r.node.Child(name); dup {
		return nil, &ErrDuplicateFeature{Code: name}
	}
	node := schema.NewNode(descs)
	r.node.AddChild(name, node)
	r.stems = append(r.stems, name)
	if err := r.groupF.AddFeature(name); err != nil {
		return nil, err
	}
	return node, nil
}

// FeatureContainer resolves a registered container by name, retrying with
// trailing NUL padding stripped for codes read back from fixed-width byte
// storage.
func (r *Root) FeatureContainer(name string) (*schema.Node, bool) {
	if n, ok := r.node.Child(name); ok {
		return n, true
	}
	return r.node.Child(strings.TrimRight(name, "\x00"))
}

// AddDataset registers a dataset for the write pass. The path is absolute
// ("/BathymetryCoverage/BathymetryCoverage.001/Group.001/values");
// registration order is write order.
func (r *Root) AddDataset(path string, arr container.Array, opts ...container.DatasetOption) {
	if _, dup := r.datasets[path]; !dup {
		r.dsOrder = append(r.dsOrder, path)
	}
	r.datasets[path] = &datasetEntry{arr: arr, opts: opts}
}

// Write flushes the whole tree to the store and runs the chunking passes:
//
//  1. attribute hierarchy, root-down (groups created, simple attributes
//     flushed, missing required attributes abort the subtree)
//  2. the feature information table
//  3. registered datasets, in registration order
//  4. per instance: discover the chunk geometry of any data group's values
//     dataset, record it on instanceChunking, re-flush the instance's
//     simple attributes only
//  5. per feature code: copy the last instance's chunk geometry onto the
//     feature information row dataset and re-flush its chunking attribute
//     at its exact sub-path
//
// Partially written siblings are not rolled back on failure; container
// writes are not transactional.
func (r *Root) Write(st container.Store) error {
	if err := r.node.WriteTo(st, "/"); err != nil {
		return err
	}
	if err := r.groupF.WriteTo(st); err != nil {
		return err
	}
	for _, path := range r.dsOrder {
		e := r.datasets[path]
		if _, err := st.WriteDataset(path, e.arr, e.opts...); err != nil {
			return err
		}
	}
	if err := r.discoverInstanceChunking(st); err != nil {
		return err
	}
	return r.propagateChunking(st)
}

// discoverInstanceChunking runs step 4 of the write protocol for every
// instance of every feature container.
func (r *Root) discoverInstanceChunking(st container.Store) error {
	for _, stem := range r.stems {
		node, _ := r.node.Child(stem)
		for _, listStem := range node.ListStems() {
			err := node.Instances(listStem).Each(func(instName string, inst *schema.Node) error {
				return r.discoverOne(st, "/"+stem+"/"+instName, inst)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// discoverOne scans one instance's data groups for a values dataset. The
// last group's geometry wins when several report one; an instance with no
// values dataset keeps its prior chunking untouched.
func (r *Root) discoverOne(st container.Store, instPath string, inst *schema.Node) error {
	var chunking []uint64
	for _, groupStem := range inst.ListStems() {
		err := inst.Instances(groupStem).Each(func(groupName string, _ *schema.Node) error {
			path := instPath + "/" + groupName + "/" + ValuesDatasetName
			if ch, ok := st.ChunkShape(path); ok {
				chunking = ch
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if chunking == nil {
		return nil
	}
	if err := inst.Attrs().Set("instanceChunking", schema.ChunkShape(chunking)); err != nil {
		return err
	}
	return inst.WriteSimpleAttrs(st, instPath)
}

// propagateChunking runs step 5: for each feature code, the last instance's
// instanceChunking value is copied onto the feature information row dataset.
func (r *Root) propagateChunking(st container.Store) error {
	for _, code := range r.groupF.FeatureCodes() {
		node, ok := r.FeatureContainer(code)
		if !ok {
			return &ErrUnknownFeature{Code: code}
		}
		var chunking string
		for _, listStem := range node.ListStems() {
			err := node.Instances(listStem).Each(func(_ string, inst *schema.Node) error {
				if v, ok := inst.Attrs().Get("instanceChunking"); ok {
					chunking = v.(string)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		if chunking == "" {
			continue
		}
		if err := r.groupF.SetChunking(code, chunking); err != nil {
			return err
		}
		if err := st.SetAttr(r.groupF.DatasetPath(code), "chunking", chunking); err != nil {
			return err
		}
	}
	return nil
}

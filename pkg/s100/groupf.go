package s100

import (
	"strings"

	"github.com/beetlebugorg/s102/internal/container"
	"github.com/beetlebugorg/s102/internal/schema"
)

// GroupFName is the fixed name of the feature information group at the root.
const GroupFName = "Group_F"

// FeatureInformationSchema covers one row of a feature information dataset
// (S-100 Table 10c-8). Every component is stored as a string; fillValue,
// lower and upper carry the type classified by the sibling datatype
// component. Registry order is the fixed component write order.
func FeatureInformationSchema() *schema.Set {
	return schema.NewSet(
		schema.Descriptor{Key: "code", Kind: schema.KindString, Required: true},
		schema.Descriptor{Key: "name", Kind: schema.KindString},
		schema.Descriptor{Key: "uom.name", Kind: schema.KindString},
		schema.Descriptor{Key: "fillValue", Kind: schema.KindRange, RangeOf: "datatype"},
		schema.Descriptor{Key: "datatype", Kind: schema.KindString},
		schema.Descriptor{Key: "lower", Kind: schema.KindRange, RangeOf: "datatype"},
		schema.Descriptor{Key: "upper", Kind: schema.KindRange, RangeOf: "datatype"},
		schema.Descriptor{Key: "closure", Kind: schema.KindString},
	)
}

// GroupF is the feature information table: the featureCode listing plus one
// row dataset per feature type. Rows describe value ranges, units and fill
// values independent of any specific feature instance.
type GroupF struct {
	features []string
	rows     map[string][]*schema.AttrSet
	chunking map[string]string

	// WriteFeatureName duplicates the feature code listing under the
	// legacy "featureName" dataset alongside "featureCode".
	WriteFeatureName bool
}

// NewGroupF creates an empty feature information table.
func NewGroupF() *GroupF {
	return &GroupF{
		rows:     make(map[string][]*schema.AttrSet),
		chunking: make(map[string]string),
	}
}

// AddFeature registers a feature type in listing order.
func (g *GroupF) AddFeature(code string) error {
	if _, dup := g.rows[code]; dup {
		return &ErrDuplicateFeature{Code: code}
	}
	g.features = append(g.features, code)
	g.rows[code] = nil
	return nil
}

// FeatureCodes returns the registered feature types in listing order.
func (g *GroupF) FeatureCodes() []string {
	out := make([]string, len(g.features))
	copy(out, g.features)
	return out
}

// AppendRow adds a feature information row for a feature type and returns
// its attribute set for population.
func (g *GroupF) AppendRow(code string) (*schema.AttrSet, error) {
	resolved, err := g.resolve(code)
	if err != nil {
		return nil, err
	}
	row := schema.NewAttrSet(FeatureInformationSchema())
	g.rows[resolved] = append(g.rows[resolved], row)
	return row, nil
}

// Rows returns the rows registered for a feature type in append order.
func (g *GroupF) Rows(code string) []*schema.AttrSet {
	resolved, err := g.resolve(code)
	if err != nil {
		return nil
	}
	return g.rows[resolved]
}

// SetChunking records the chunk geometry attribute for a feature's row
// dataset.
func (g *GroupF) SetChunking(code, chunking string) error {
	resolved, err := g.resolve(code)
	if err != nil {
		return err
	}
	g.chunking[resolved] = chunking
	return nil
}

// Chunking returns the recorded chunk geometry for a feature type.
func (g *GroupF) Chunking(code string) (string, bool) {
	resolved, err := g.resolve(code)
	if err != nil {
		return "", false
	}
	c, ok := g.chunking[resolved]
	return c, ok
}

// resolve matches a feature code against the registered set. Codes read
// back from a container may carry trailing NUL padding from fixed-width
// byte storage; the lookup retries with the padding stripped.
func (g *GroupF) resolve(code string) (string, error) {
	if _, ok := g.rows[code]; ok {
		return code, nil
	}
	trimmed := strings.TrimRight(code, "\x00")
	if _, ok := g.rows[trimmed]; ok {
		return trimmed, nil
	}
	return "", &ErrUnknownFeature{Code: code}
}

// DatasetPath returns the container path of a feature's row dataset.
func (g *GroupF) DatasetPath(code string) string {
	return "/" + GroupFName + "/" + code
}

// WriteTo flushes the table: the Group_F group, the featureCode listing and
// one row dataset per feature type with its chunking attribute.
func (g *GroupF) WriteTo(st container.Store) error {
	if err := st.CreateGroup("/" + GroupFName); err != nil {
		return err
	}

	codes := g.FeatureCodes()
	_, err := st.WriteDataset("/"+GroupFName+"/featureCode",
		container.Array{Shape: []uint64{uint64(len(codes))}, Data: codes})
	if err != nil {
		return err
	}
	if g.WriteFeatureName {
		_, err := st.WriteDataset("/"+GroupFName+"/featureName",
			container.Array{Shape: []uint64{uint64(len(codes))}, Data: codes})
		if err != nil {
			return err
		}
	}

	keys := FeatureInformationSchema().Keys()
	for _, code := range g.features {
		rows := g.rows[code]
		records := make([][]string, len(rows))
		for i, row := range rows {
			if missing := row.MissingRequired(); len(missing) > 0 {
				return &schema.ErrRequiredAttribute{Key: missing[0], Node: g.DatasetPath(code)}
			}
			rec := make([]string, len(keys))
			for j, key := range keys {
				rec[j] = row.GetString(key)
			}
			records[i] = rec
		}
		path := g.DatasetPath(code)
		_, err := st.WriteDataset(path, container.Array{
			Shape:   []uint64{uint64(len(records)), uint64(len(keys))},
			Data:    records,
			Columns: keys,
		})
		if err != nil {
			return err
		}
		if c, ok := g.chunking[code]; ok {
			if err := st.SetAttr(path, "chunking", c); err != nil {
				return err
			}
		}
	}
	return nil
}

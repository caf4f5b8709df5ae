package s100

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/s102/internal/container"
	"github.com/beetlebugorg/s102/internal/schema"
)

func TestFeatureInformationWriteOrder(t *testing.T) {
	keys := FeatureInformationSchema().Keys()
	want := []string{"code", "name", "uom.name", "fillValue", "datatype", "lower", "upper", "closure"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func fillDepthRow(t *testing.T, row *schema.AttrSet) {
	t.Helper()
	for key, val := range map[string]interface{}{
		"code":     "depth",
		"name":     "depth",
		"uom.name": "metres",
		"datatype": schema.H5TNativeFloat,
		"closure":  "closedInterval",
	} {
		if err := row.Set(key, val); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	// range components classify as float via datatype
	if err := row.Set("fillValue", 1000000.0); err != nil {
		t.Fatal(err)
	}
	if err := row.Set("lower", -12000.0); err != nil {
		t.Fatal(err)
	}
	if err := row.Set("upper", 12000.0); err != nil {
		t.Fatal(err)
	}
}

func TestGroupFWritesRowsAsStrings(t *testing.T) {
	g := NewGroupF()
	if err := g.AddFeature("BathymetryCoverage"); err != nil {
		t.Fatal(err)
	}
	row, err := g.AppendRow("BathymetryCoverage")
	if err != nil {
		t.Fatal(err)
	}
	fillDepthRow(t, row)

	st := container.NewMemStore()
	if err := g.WriteTo(st); err != nil {
		t.Fatal(err)
	}

	arr, ok := st.Dataset("/Group_F/BathymetryCoverage")
	if !ok {
		t.Fatal("row dataset not written")
	}
	records := arr.Data.([][]string)
	if len(records) != 1 {
		t.Fatalf("rows = %d, want 1", len(records))
	}
	want := []string{"depth", "depth", "metres", "1000000", "H5T_NATIVE_FLOAT", "-12000", "12000", "closedInterval"}
	for i := range want {
		if records[0][i] != want[i] {
			t.Fatalf("record = %v, want %v", records[0], want)
		}
	}

	codes, ok := st.Dataset("/Group_F/featureCode")
	if !ok {
		t.Fatal("featureCode dataset not written")
	}
	if list := codes.Data.([]string); len(list) != 1 || list[0] != "BathymetryCoverage" {
		t.Fatalf("featureCode = %v", codes.Data)
	}
}

func TestGroupFRequiresRowCode(t *testing.T) {
	g := NewGroupF()
	if err := g.AddFeature("BathymetryCoverage"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AppendRow("BathymetryCoverage"); err != nil {
		t.Fatal(err)
	}

	st := container.NewMemStore()
	err := g.WriteTo(st)
	var re *schema.ErrRequiredAttribute
	if !errors.As(err, &re) || re.Key != "code" {
		t.Fatalf("WriteTo = %v, want missing code", err)
	}
}

func TestGroupFResolvesPaddedCodes(t *testing.T) {
	g := NewGroupF()
	if err := g.AddFeature("BathymetryCoverage"); err != nil {
		t.Fatal(err)
	}

	// codes read back from fixed-width byte storage carry NUL padding
	if _, err := g.AppendRow("BathymetryCoverage\x00\x00"); err != nil {
		t.Fatalf("padded AppendRow: %v", err)
	}
	if err := g.SetChunking("BathymetryCoverage\x00", "150,200"); err != nil {
		t.Fatalf("padded SetChunking: %v", err)
	}
	if c, ok := g.Chunking("BathymetryCoverage"); !ok || c != "150,200" {
		t.Fatalf("Chunking = %q, %v", c, ok)
	}

	var uf *ErrUnknownFeature
	if _, err := g.AppendRow("SurfaceCurrent"); !errors.As(err, &uf) {
		t.Fatalf("AppendRow(unknown) = %v, want ErrUnknownFeature", err)
	}
}

func TestGroupFFeatureNameListing(t *testing.T) {
	g := NewGroupF()
	g.WriteFeatureName = true
	for _, code := range []string{"BathymetryCoverage", "TrackingListCoverage"} {
		if err := g.AddFeature(code); err != nil {
			t.Fatal(err)
		}
		row, err := g.AppendRow(code)
		if err != nil {
			t.Fatal(err)
		}
		if err := row.Set("code", "depth"); err != nil {
			t.Fatal(err)
		}
	}

	st := container.NewMemStore()
	if err := g.WriteTo(st); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"featureCode", "featureName"} {
		arr, ok := st.Dataset("/Group_F/" + name)
		if !ok {
			t.Fatalf("%s dataset not written", name)
		}
		if list := arr.Data.([]string); len(list) != 2 {
			t.Fatalf("%s = %v", name, list)
		}
	}
}

package container

import (
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

func TestWriteFileRoundTrip(t *testing.T) {
	m := NewMemStore()
	if err := m.CreateGroup("/BathymetryCoverage/BathymetryCoverage.001/Group.001"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAttr("/", "productSpecification", "INT.IHO.S-102.2.1"); err != nil {
		t.Fatal(err)
	}

	data := [][]float32{{1, 2, 3}, {4, 5, 6}}
	path := "/BathymetryCoverage/BathymetryCoverage.001/Group.001/values"
	if _, err := m.WriteDataset(path, Array{Shape: []uint64{2, 3}, Data: data}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAttr(path, "units", "metres"); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(t.TempDir(), "out.h5")
	rep, err := WriteFile(file, m)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Datasets != 1 {
		t.Fatalf("Datasets = %d, want 1", rep.Datasets)
	}
	// the root attribute cannot be persisted by the writer, so it must be
	// surfaced in the report
	if len(rep.PendingGroupAttrs) != 1 || rep.PendingGroupAttrs[0].Key != "productSpecification" {
		t.Fatalf("PendingGroupAttrs = %v", rep.PendingGroupAttrs)
	}

	f, err := hdf5.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	ds, err := f.OpenDataset(path)
	if err != nil {
		t.Fatal(err)
	}
	vals, err := ds.ReadFloat32()
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 6 || vals[0] != 1 || vals[5] != 6 {
		t.Fatalf("read back %v", vals)
	}

	units, err := f.ReadAttr(path + "@units")
	if err != nil {
		t.Fatal(err)
	}
	if units != "metres" {
		t.Fatalf("units = %v", units)
	}
}

func TestWriteFileCountsGroups(t *testing.T) {
	m := NewMemStore()
	if err := m.CreateGroup("/Group_F"); err != nil {
		t.Fatal(err)
	}
	if err := m.CreateGroup("/BathymetryCoverage"); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(t.TempDir(), "groups.h5")
	rep, err := WriteFile(file, m)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Groups != 3 { // root plus two children
		t.Fatalf("Groups = %d, want 3", rep.Groups)
	}
}

package schema

import (
	"testing"
)

// recordingWriter captures attribute flushes for assertion.
type recordingWriter struct {
	groups []string
	attrs  []attrWrite
}

type attrWrite struct {
	path, key string
	val       interface{}
}

func (w *recordingWriter) CreateGroup(path string) error {
	w.groups = append(w.groups, path)
	return nil
}

func (w *recordingWriter) SetAttr(path, key string, val interface{}) error {
	w.attrs = append(w.attrs, attrWrite{path, key, val})
	return nil
}

func TestInstanceNaming(t *testing.T) {
	tests := []struct {
		stem  string
		index int
		want  string
	}{
		{"BathymetryCoverage", 1, "BathymetryCoverage.001"},
		{"Group", 2, "Group.002"},
		{"Group", 42, "Group.042"},
		{"Group", 123, "Group.123"},
	}
	for _, tt := range tests {
		if got := InstanceName(tt.stem, tt.index); got != tt.want {
			t.Errorf("InstanceName(%q, %d) = %q, want %q", tt.stem, tt.index, got, tt.want)
		}
	}
}

func TestParseInstanceName(t *testing.T) {
	stem, idx, ok := ParseInstanceName("BathymetryCoverage.001")
	if !ok || stem != "BathymetryCoverage" || idx != 1 {
		t.Fatalf("ParseInstanceName = %q, %d, %v", stem, idx, ok)
	}
	for _, bad := range []string{"Group_F", "Group.", ".001", "Group.abc", "Group.000"} {
		if _, _, ok := ParseInstanceName(bad); ok {
			t.Errorf("ParseInstanceName(%q) ok, want failure", bad)
		}
	}
}

func TestAppendNewSkipsDiscoveredIndices(t *testing.T) {
	descs := NewSet(Descriptor{Key: "westBoundLongitude", Kind: KindFloat})
	l := NewInstanceList("Group")

	if err := l.Put(1, NewNode(descs)); err != nil {
		t.Fatal(err)
	}
	if err := l.Put(3, NewNode(descs)); err != nil {
		t.Fatal(err)
	}

	_, name := l.AppendNew(descs)
	if name != "Group.002" {
		t.Fatalf("first AppendNew = %q, want Group.002", name)
	}
	_, name = l.AppendNew(descs)
	if name != "Group.004" {
		t.Fatalf("second AppendNew = %q, want Group.004", name)
	}
}

func TestAtIsPositional(t *testing.T) {
	descs := NewSet(Descriptor{Key: "x", Kind: KindInt})
	l := NewInstanceList("Group")

	first := NewNode(descs)
	third := NewNode(descs)
	if err := l.Put(1, first); err != nil {
		t.Fatal(err)
	}
	if err := l.Put(3, third); err != nil {
		t.Fatal(err)
	}

	// positions follow append order, not the numbering
	got, err := l.At(2)
	if err != nil || got != third {
		t.Fatalf("At(2) = %v, %v; want the second entry", got, err)
	}
	if _, err := l.At(3); err == nil {
		t.Fatal("At(3) on two-entry list succeeded")
	}
}

func TestInstanceAt(t *testing.T) {
	descs := NewSet(Descriptor{Key: "x", Kind: KindInt})
	l := NewInstanceList("Group")
	n, _ := l.AppendNew(descs)

	got, err := l.At(1)
	if err != nil || got != n {
		t.Fatalf("At(1) = %v, %v", got, err)
	}
	if _, err := l.At(2); err == nil {
		t.Fatal("At(2) on single-entry list succeeded")
	}
}

func TestWriteToOrdersAttrsChildrenInstances(t *testing.T) {
	rootDescs := NewSet(
		Descriptor{Key: "productSpecification", Kind: KindString},
		Descriptor{Key: "issueDate", Kind: KindDate},
	)
	covDescs := NewSet(Descriptor{Key: "numInstances", Kind: KindInt})
	instDescs := NewSet(Descriptor{Key: "numGRP", Kind: KindInt})

	root := NewNode(rootDescs)
	if err := root.Attrs().Set("issueDate", "20260315"); err != nil {
		t.Fatal(err)
	}
	if err := root.Attrs().Set("productSpecification", "INT.IHO.S-102.2.1"); err != nil {
		t.Fatal(err)
	}

	cov := NewNode(covDescs)
	if err := cov.Attrs().Set("numInstances", 1); err != nil {
		t.Fatal(err)
	}
	root.AddChild("BathymetryCoverage", cov)

	inst, _ := cov.Instances("BathymetryCoverage").AppendNew(instDescs)
	if err := inst.Attrs().Set("numGRP", 1); err != nil {
		t.Fatal(err)
	}

	w := &recordingWriter{}
	if err := root.WriteTo(w, "/"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	wantGroups := []string{"/", "/BathymetryCoverage", "/BathymetryCoverage/BathymetryCoverage.001"}
	if len(w.groups) != len(wantGroups) {
		t.Fatalf("groups = %v, want %v", w.groups, wantGroups)
	}
	for i := range wantGroups {
		if w.groups[i] != wantGroups[i] {
			t.Fatalf("groups = %v, want %v", w.groups, wantGroups)
		}
	}

	// root attrs flush in registry order, not set order
	if w.attrs[0].key != "productSpecification" || w.attrs[1].key != "issueDate" {
		t.Fatalf("attr order = %v", w.attrs)
	}
}

func TestWriteToRejectsMissingRequired(t *testing.T) {
	descs := NewSet(Descriptor{Key: "horizontalCRS", Kind: KindInt, Required: true})
	n := NewNode(descs)

	w := &recordingWriter{}
	err := n.WriteTo(w, "/")
	re, ok := err.(*ErrRequiredAttribute)
	if !ok {
		t.Fatalf("WriteTo = %v, want ErrRequiredAttribute", err)
	}
	if re.Key != "horizontalCRS" || re.Node != "/" {
		t.Fatalf("error fields = %+v", re)
	}
}

func TestInitializePropertiesRecursive(t *testing.T) {
	descs := NewSet(Descriptor{Key: "commonPointRule", Kind: KindInt,
		Default: func() interface{} { return 4 }})

	root := NewNode(descs)
	child := NewNode(descs)
	root.AddChild("BathymetryCoverage", child)
	inst, _ := child.Instances("BathymetryCoverage").AppendNew(descs)

	if err := root.InitializeProperties(false, true); err != nil {
		t.Fatal(err)
	}
	for _, n := range []*Node{root, child, inst} {
		if v, ok := n.Attrs().Get("commonPointRule"); !ok || v.(int64) != 4 {
			t.Fatalf("default not applied: %v %v", v, ok)
		}
	}
}

package schema

import (
	"errors"
	"testing"
	"time"
)

func testSet() *Set {
	datum := NewEnum("verticalDatum",
		map[string]int{
			"meanLowWater":      3,
			"meanLowerLowWater": 12,
		},
		map[string]int{
			"MLW":  3,
			"MLLW": 12,
		})
	return NewSet(
		Descriptor{Key: "productSpecification", Kind: KindString, Required: true,
			Default: func() interface{} { return "INT.IHO.S-102.2.1" }},
		Descriptor{Key: "issueDate", Kind: KindDate},
		Descriptor{Key: "verticalDatum", Kind: KindEnum, Enum: datum, EnumAsInt: true},
		Descriptor{Key: "datatype", Kind: KindString},
		Descriptor{Key: "fillValue", Kind: KindRange, RangeOf: "datatype"},
		Descriptor{Key: "chunking", Kind: KindChunk},
		Descriptor{Key: "horizontalDatumValue", Kind: KindInt},
	)
}

func TestSetCoercesScalars(t *testing.T) {
	a := NewAttrSet(testSet())

	if err := a.Set("horizontalDatumValue", 4326); err != nil {
		t.Fatalf("Set(int): %v", err)
	}
	v, ok := a.Get("horizontalDatumValue")
	if !ok || v.(int64) != 4326 {
		t.Fatalf("Get = %v, %v; want 4326, true", v, ok)
	}

	if err := a.Set("productSpecification", 42); err == nil {
		t.Fatal("Set(string key, int value) succeeded, want type mismatch")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	a := NewAttrSet(testSet())
	err := a.Set("noSuchAttribute", "x")
	var se *ErrStructure
	if !errors.As(err, &se) {
		t.Fatalf("Set(unknown) = %v, want ErrStructure", err)
	}
}

func TestEnumResolvesToCanonicalName(t *testing.T) {
	a := NewAttrSet(testSet())

	// a shorthand alias reads back as the official long-form name
	if err := a.Set("verticalDatum", "MLLW"); err != nil {
		t.Fatalf("Set(alias): %v", err)
	}
	if v, _ := a.Get("verticalDatum"); v != "meanLowerLowWater" {
		t.Fatalf("Get = %v, want meanLowerLowWater", v)
	}
	// the on-disk form keeps the integer encoding
	if stored := a.values["verticalDatum"]; stored.(int64) != 12 {
		t.Fatalf("stored form = %v, want 12", stored)
	}

	// so does a raw integer code
	if err := a.Set("verticalDatum", 3); err != nil {
		t.Fatalf("Set(code): %v", err)
	}
	if v, _ := a.Get("verticalDatum"); v != "meanLowWater" {
		t.Fatalf("Get = %v, want meanLowWater", v)
	}

	if err := a.Set("verticalDatum", "lowestLow"); err == nil {
		t.Fatal("Set(unknown member) succeeded, want error")
	}
}

func TestTemporalCoercion(t *testing.T) {
	a := NewAttrSet(testSet())

	if err := a.Set("issueDate", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Set(time.Time): %v", err)
	}
	if v, _ := a.Get("issueDate"); v != "20260315" {
		t.Fatalf("issueDate = %v, want 20260315", v)
	}

	if err := a.Set("issueDate", "2026-03-15"); err != nil {
		t.Fatalf("Set(ISO string): %v", err)
	}
	if v, _ := a.Get("issueDate"); v != "20260315" {
		t.Fatalf("issueDate = %v, want 20260315", v)
	}

	err := a.Set("issueDate", "the ides of March")
	var te *ErrInvalidTemporal
	if !errors.As(err, &te) {
		t.Fatalf("Set(garbage date) = %v, want ErrInvalidTemporal", err)
	}
}

func TestRangeFollowsSiblingClassification(t *testing.T) {
	a := NewAttrSet(testSet())

	// no classification yet: strings only
	if err := a.Set("fillValue", "unknown"); err != nil {
		t.Fatalf("Set(string fill, unclassified): %v", err)
	}

	if err := a.Set("datatype", H5TNativeFloat); err != nil {
		t.Fatalf("Set(datatype): %v", err)
	}
	if err := a.Set("fillValue", 1000000.0); err != nil {
		t.Fatalf("Set(float fill): %v", err)
	}
	if got := a.GetString("fillValue"); got != "1000000" {
		t.Fatalf("fillValue string form = %q, want %q", got, "1000000")
	}
	if v, _ := a.Get("fillValue"); v.(float64) != 1000000.0 {
		t.Fatalf("fillValue typed = %v, want 1000000", v)
	}

	if err := a.Set("datatype", H5TNativeInt32); err != nil {
		t.Fatalf("Set(datatype int): %v", err)
	}
	if err := a.Set("fillValue", 255); err != nil {
		t.Fatalf("Set(int fill): %v", err)
	}
	if got := a.GetString("fillValue"); got != "255" {
		t.Fatalf("fillValue = %q, want 255", got)
	}
}

func TestFractionalFillKeepsDecimals(t *testing.T) {
	a := NewAttrSet(testSet())
	if err := a.Set("datatype", H5TNativeFloat); err != nil {
		t.Fatal(err)
	}
	if err := a.Set("fillValue", -9999.25); err != nil {
		t.Fatal(err)
	}
	if got := a.GetString("fillValue"); got != "-9999.25" {
		t.Fatalf("fillValue = %q, want -9999.25", got)
	}
}

func TestChunkAttribute(t *testing.T) {
	a := NewAttrSet(testSet())

	if err := a.Set("chunking", ChunkShape{150, 200}); err != nil {
		t.Fatalf("Set(shape): %v", err)
	}
	if v, _ := a.Get("chunking"); v != "150,200" {
		t.Fatalf("chunking = %v, want 150,200", v)
	}

	if err := a.Set("chunking", "64,64"); err != nil {
		t.Fatalf("Set(string): %v", err)
	}
	if err := a.Set("chunking", "64,zero"); err == nil {
		t.Fatal("Set(malformed chunking) succeeded, want error")
	}
}

func TestUnsetHonorsRequired(t *testing.T) {
	a := NewAttrSet(testSet())
	if err := a.InitializeDefaults(false); err != nil {
		t.Fatal(err)
	}

	var re *ErrRequiredAttribute
	if err := a.Unset("productSpecification"); !errors.As(err, &re) {
		t.Fatalf("Unset(required) = %v, want ErrRequiredAttribute", err)
	}

	if err := a.Set("issueDate", "20260315"); err != nil {
		t.Fatal(err)
	}
	if err := a.Unset("issueDate"); err != nil {
		t.Fatalf("Unset(optional): %v", err)
	}
	if a.Has("issueDate") {
		t.Fatal("issueDate still set after Unset")
	}
}

func TestInitializeDefaults(t *testing.T) {
	a := NewAttrSet(testSet())
	if err := a.InitializeDefaults(false); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Get("productSpecification"); v != "INT.IHO.S-102.2.1" {
		t.Fatalf("default = %v", v)
	}

	// overwrite false preserves caller values
	if err := a.Set("productSpecification", "INT.IHO.S-102.3.0"); err != nil {
		t.Fatal(err)
	}
	if err := a.InitializeDefaults(false); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Get("productSpecification"); v != "INT.IHO.S-102.3.0" {
		t.Fatalf("InitializeDefaults(false) clobbered value: %v", v)
	}

	if err := a.InitializeDefaults(true); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Get("productSpecification"); v != "INT.IHO.S-102.2.1" {
		t.Fatalf("InitializeDefaults(true) did not reset: %v", v)
	}
}

func TestMissingRequired(t *testing.T) {
	a := NewAttrSet(testSet())
	missing := a.MissingRequired()
	if len(missing) != 1 || missing[0] != "productSpecification" {
		t.Fatalf("MissingRequired = %v", missing)
	}
	if err := a.Set("productSpecification", "INT.IHO.S-102.2.1"); err != nil {
		t.Fatal(err)
	}
	if missing := a.MissingRequired(); len(missing) != 0 {
		t.Fatalf("MissingRequired after set = %v", missing)
	}
}

func TestMergePreservesOrderAndFirstWins(t *testing.T) {
	base := NewSet(
		Descriptor{Key: "a", Kind: KindString},
		Descriptor{Key: "b", Kind: KindInt},
	)
	frag := NewSet(
		Descriptor{Key: "b", Kind: KindFloat}, // ignored, base wins
		Descriptor{Key: "c", Kind: KindString},
	)
	merged := base.Merge(frag)
	keys := merged.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
	d, _ := merged.Lookup("b")
	if d.Kind != KindInt {
		t.Fatalf("merged b kind = %v, want integer", d.Kind)
	}
}

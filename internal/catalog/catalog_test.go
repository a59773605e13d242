package catalog

import "testing"

func TestSortOfKnownNames(t *testing.T) {
	cases := []struct {
		name   string
		family FamilyID
		value  uint32
	}{
		{"decl.function", FamilyDecl, 1},
		{"type.pointer", FamilyType, 6},
		{"expr.call", FamilyExpr, 12},
		{".msvc.trait.uuid", FamilyMsvcTrait, 0},
	}
	for _, c := range cases {
		ref, err := SortOf(c.name)
		if err != nil {
			t.Fatalf("SortOf(%q): %v", c.name, err)
		}
		if ref.Family != c.family || ref.Value != c.value {
			t.Errorf("SortOf(%q) = %+v, want {%v %d}", c.name, ref, c.family, c.value)
		}
	}
}

func TestSortOfVendorFallback(t *testing.T) {
	ref, err := SortOf(".msvc.code-analysis.some-unknown-future-trait")
	if err != nil {
		t.Fatalf("expected vendor fallback, got error: %v", err)
	}
	if ref.Family != FamilyVendor {
		t.Errorf("expected vendor family fallback, got %+v", ref)
	}
}

func TestSortOfInvalidName(t *testing.T) {
	_, err := SortOf("not-a-real-partition")
	if err == nil {
		t.Fatal("expected error for unknown partition name")
	}
	var target *ErrInvalidPartitionName
	if _, ok := err.(*ErrInvalidPartitionName); !ok {
		t.Errorf("expected *ErrInvalidPartitionName, got %T", err)
		_ = target
	}
}

func TestNameOfRoundTrip(t *testing.T) {
	ref, err := SortOf("decl.variable")
	if err != nil {
		t.Fatalf("SortOf: %v", err)
	}
	name, ok := NameOf(ref.Family, ref.Value)
	if !ok || name != "decl.variable" {
		t.Errorf("NameOf(%+v) = %q, %v, want \"decl.variable\", true", ref, name, ok)
	}
}

func TestNameOfUnknownSortValue(t *testing.T) {
	if _, ok := NameOf(FamilyDecl, 9999); ok {
		t.Error("expected NameOf to report false for an unregistered sort value")
	}
}

// TestAllFamiliesCovered checks that every family with a non-trivial count
// (more than just its vendor-extension/none sentinel) has at least one
// catalog entry, so a partition seen from any declared family can resolve.
func TestAllFamiliesCovered(t *testing.T) {
	families := []FamilyID{
		FamilyDecl, FamilyType, FamilyExpr, FamilyStmt, FamilyName,
		FamilySyntax, FamilyChart, FamilyForm, FamilyAttr, FamilyDir,
		FamilyMacro, FamilyPragma, FamilyLit, FamilyString, FamilyVendor,
		FamilyHeap, FamilyTrait, FamilyMsvcTrait,
	}
	for _, f := range families {
		if _, ok := byFamilySort[f]; !ok {
			t.Errorf("family %v has no catalog entries at all", f)
		}
	}
}

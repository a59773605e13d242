package model

import "testing"

func TestDeclIndexRoundTrip(t *testing.T) {
	idx, err := NewDeclIndex(DeclFunctionSort, 42)
	if err != nil {
		t.Fatalf("NewDeclIndex: %v", err)
	}
	if got := idx.Sort(); got != DeclFunctionSort {
		t.Errorf("Sort() = %v, want %v", got, DeclFunctionSort)
	}
	if got := idx.Position(); got != 42 {
		t.Errorf("Position() = %d, want 42", got)
	}
	if idx.IsNull() {
		t.Error("constructed index must not be null")
	}
}

func TestTypeIndexRoundTrip(t *testing.T) {
	idx, err := NewTypeIndex(TypePointerSort, 7)
	if err != nil {
		t.Fatalf("NewTypeIndex: %v", err)
	}
	if got := idx.Sort(); got != TypePointerSort {
		t.Errorf("Sort() = %v, want %v", got, TypePointerSort)
	}
	if got := idx.Position(); got != 7 {
		t.Errorf("Position() = %d, want 7", got)
	}
}

func TestDeclTraitsHas(t *testing.T) {
	spec := TraitCxx | TraitExternal
	if !spec.Has(TraitCxx) {
		t.Error("expected TraitCxx to be set")
	}
	if !spec.Has(TraitCxx | TraitExternal) {
		t.Error("expected both bits to be set")
	}
	if spec.Has(TraitNonExported) {
		t.Error("TraitNonExported must not be set")
	}
}

func TestZeroIndexIsNull(t *testing.T) {
	var d DeclIndex
	if !d.IsNull() {
		t.Error("zero-valued DeclIndex must report IsNull")
	}
	var ty TypeIndex
	if !ty.IsNull() {
		t.Error("zero-valued TypeIndex must report IsNull")
	}
}

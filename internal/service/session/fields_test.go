package session

import "testing"

func TestParseFieldsEmptySelectsDefaults(t *testing.T) {
	set := ParseFields("")
	if len(set) != len(DefaultFields()) {
		t.Fatalf("expected default selection, got %v", set)
	}
	if set.Has(FieldShipping) {
		t.Fatal("shipping must not be part of the defaults")
	}
}

func TestParseFieldsNormalizes(t *testing.T) {
	set := ParseFields(" Cart_Key , TOTALS ,shipping")
	if len(set) != 3 {
		t.Fatalf("expected 3 fields, got %v", set)
	}
	if !set.Has(FieldCartKey) || !set.Has(FieldTotals) || !set.Has(FieldShipping) {
		t.Fatalf("unexpected selection: %v", set)
	}
}

func TestParseFieldsDropsUnrecognized(t *testing.T) {
	set := ParseFields("items,bogus,")
	if len(set) != 1 || !set.Has(FieldItems) {
		t.Fatalf("expected only items, got %v", set)
	}
}

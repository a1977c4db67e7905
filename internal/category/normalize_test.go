package category

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"olahan-susu", "Olahan Susu"},
		{"olahan   susu", "Olahan Susu"},
		{"  kopi ", "Kopi"},
		{"MIE INSTAN", "Mie Instan"},
		{"Olahan Susu", "Olahan Susu"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, raw := range []string{"olahan-susu", "sabun  cuci", "Kopi"} {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestMergeCountsCollapsesVariants(t *testing.T) {
	got := MergeCounts([]Count{
		{Name: "olahan-susu", Count: 2},
		{Name: "Olahan Susu", Count: 3},
		{Name: "kopi", Count: 4},
		{Name: "  ", Count: 9},
	})
	want := []Count{
		{Name: "Olahan Susu", Count: 5},
		{Name: "Kopi", Count: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeCounts = %v, want %v", got, want)
	}
}

func TestMergeCountsTieBreaksByName(t *testing.T) {
	got := MergeCounts([]Count{
		{Name: "sabun", Count: 2},
		{Name: "kopi", Count: 2},
	})
	want := []Count{
		{Name: "Kopi", Count: 2},
		{Name: "Sabun", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeCounts = %v, want %v", got, want)
	}
}

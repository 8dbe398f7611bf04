package netgear

import (
	"testing"
)

func TestDeriveMagic(t *testing.T) {
	tests := []struct {
		name string
		want uint32
	}{
		{"WNDR4500v2", 0x62744915},
		{"", 0},
		// The name ends at the first NUL
		{"WNDR4500v2\x00junk", 0x62744915},
	}

	for _, tt := range tests {
		if got := DeriveMagic(tt.name); got != tt.want {
			t.Errorf("DeriveMagic(%q) = %#08x, want %#08x", tt.name, got, tt.want)
		}
	}

	long := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if DeriveMagic(long) != DeriveMagic(long[:16]) {
		t.Errorf("DeriveMagic did not truncate to 16 bytes")
	}
}

func TestModelName(t *testing.T) {
	if got := ModelName(0x62744915); got != "WNDR4500v2" {
		t.Errorf("ModelName(0x62744915) = %q, want WNDR4500v2", got)
	}
	if got := ModelName(0); got != UnknownModel {
		t.Errorf("ModelName(0) = %q, want %q", got, UnknownModel)
	}
	if got := ModelName(0xDEADBEEF); got != UnknownModel {
		t.Errorf("ModelName(0xDEADBEEF) = %q, want %q", got, UnknownModel)
	}
}

func TestModelsTableIsConsistent(t *testing.T) {
	for _, m := range Models() {
		if m.Name == UnknownModel {
			continue
		}
		if got := DeriveMagic(m.Name); got != m.Magic {
			t.Errorf("model %s: derived magic %#08x, table has %#08x", m.Name, got, m.Magic)
		}
	}

	m, ok := LookupModel("wndr4500V2")
	if !ok || m.Magic != 0x62744915 {
		t.Errorf("LookupModel is not case insensitive: %+v %v", m, ok)
	}

	// Callers cannot modify the table
	list := Models()
	list[1].Magic = 1
	if ModelName(0x62744915) != "WNDR4500v2" {
		t.Errorf("Models returned the table itself")
	}
}

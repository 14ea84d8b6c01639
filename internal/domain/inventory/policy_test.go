package inventory

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestUsageWashDryFold(t *testing.T) {
	got := DefaultPolicy().Usage("wash_dry_fold", 10)

	want := map[string]float64{
		"Detergent":       0.5,
		"Bleach":          0.1,
		"Fabric Softener": 0.3,
		"Starch":          0.2,
	}
	if len(got) != len(want) {
		t.Fatalf("usage = %v, want %v", got, want)
	}
	for name, q := range want {
		if !almostEqual(got[name], q) {
			t.Errorf("usage[%q] = %v, want %v", name, got[name], q)
		}
	}
}

func TestUsageDryConsumesNothing(t *testing.T) {
	if got := DefaultPolicy().Usage("dry", 25); len(got) != 0 {
		t.Fatalf("dry usage = %v, want empty", got)
	}
}

func TestUsageUnknownServiceType(t *testing.T) {
	if got := DefaultPolicy().Usage("ironing", 5); len(got) != 0 {
		t.Fatalf("unknown service usage = %v, want empty", got)
	}
}

func TestUsageZeroWeightFiltered(t *testing.T) {
	if got := DefaultPolicy().Usage("wash", 0); len(got) != 0 {
		t.Fatalf("zero-weight usage = %v, want empty", got)
	}
}

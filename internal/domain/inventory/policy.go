package inventory

// Policy maps a service type to consumption rates per kg of laundry.
// It is injected into order intake so the table can be swapped without
// touching the deduction code.
type Policy map[string]map[string]float64

// DefaultPolicy is the shop's standing consumption table.
func DefaultPolicy() Policy {
	return Policy{
		"wash":          {"Detergent": 0.05, "Bleach": 0.01},
		"dry":           {},
		"fold":          {"Starch": 0.02},
		"wash_dry":      {"Detergent": 0.05, "Bleach": 0.01},
		"wash_dry_fold": {"Detergent": 0.05, "Bleach": 0.01, "Fabric Softener": 0.03, "Starch": 0.02},
	}
}

// Usage computes item -> quantity consumed for one order. Unknown
// service types consume nothing; zero-rate entries are filtered out.
func (p Policy) Usage(serviceType string, weight float64) map[string]float64 {
	rates := p[serviceType]
	out := make(map[string]float64, len(rates))
	for name, perKg := range rates {
		if q := weight * perKg; q > 0 {
			out[name] = q
		}
	}
	return out
}

// Package stubbing demonstrates the stubbing tiers of a generated double:
// the always-present default value, one-shot sequences, blanket functions,
// and per-argument overrides.
package stubbing

//go:generate go run ../../doublegen/main.go Pricer

// Pricer quotes unit prices in cents.
type Pricer interface {
	PriceFor(sku string) int64
}

// TotalFor sums the quoted price of every SKU in the order, counting
// duplicates once per occurrence.
func TotalFor(pricer Pricer, skus []string) int64 {
	var total int64

	for _, sku := range skus {
		total += pricer.PriceFor(sku)
	}

	return total
}

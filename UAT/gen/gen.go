// Package gen holds the interfaces doublegen runs against and the doubles it
// generated for them. The generator's golden tests regenerate these files on
// every run and fail on any drift, so the checked-in output is always exactly
// what the current generator produces.
package gen

//go:generate go run ../../doublegen/main.go Store
//go:generate go run ../../doublegen/main.go Meter --name MeterFake

// Store is a key-value store whose methods cover every argument and return
// packing the generator knows: no-arg and single-arg methods, a multi-arg
// method, a bare error, an optional value, and a fallible value.
type Store interface {
	Close()
	Delete(key string) error
	Fetch(key string) (string, bool)
	Lookup(key string) (string, error)
	Put(key string, value string) error
	Size() int
}

// Meter accumulates weighted observations. Its shapes force the generated
// Args and Ret structs: a three-argument method with no results, and a
// no-argument method with three results.
type Meter interface {
	Observe(name string, value float64, weight float64)
	Snapshot() (int64, int64, float64)
}

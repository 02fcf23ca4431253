// Package ledger demonstrates order verification: proving what was recorded,
// how often, and in what sequence, including histories with duplicate values.
package ledger

//go:generate go run ../../doublegen/main.go Journal

// Journal accepts append-only audit entries.
type Journal interface {
	Record(entry string)
}

// Settle posts an opening entry, a credit or debit per amount, and a closing
// entry.
func Settle(journal Journal, amounts []int) {
	journal.Record("open")

	for _, amount := range amounts {
		if amount >= 0 {
			journal.Record("credit")
		} else {
			journal.Record("debit")
		}
	}

	journal.Record("close")
}

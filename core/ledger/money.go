package ledger

import "math"

// Cents is an amount in hundredths; sums are kept in Cents so that repeated
// float additions never drift.
type Cents int64

func ToCents(v float64) Cents {
	return Cents(math.Round(v * 100))
}

func (c Cents) Float() float64 {
	return float64(c) / 100
}

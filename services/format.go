package services

import (
	"strconv"
)

const pricePlaces = 2

// FormatPrice renders value with two decimals. Rounding is done on the exact
// binary value, ties to even, so 2.675 becomes "2.67" and 0.125 "0.12".
func FormatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', pricePlaces, 64)
}

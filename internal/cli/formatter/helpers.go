package formatter

import "fmt"

// MinutesToClock renders a minute count as "H:MM", e.g. 510 -> "8:30".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Money renders an amount with two decimals.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

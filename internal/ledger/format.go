package ledger

import "fmt"

// FormatBalance renders integer cents as a signed two-decimal string:
// -150023 becomes "-1500.23". Every user-facing amount goes through this
// helper so displayed amounts stay consistent.
func FormatBalance(cents int64) string {
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	if cents < 0 {
		if whole < 0 {
			whole = -whole
		}
		return fmt.Sprintf("-%d.%02d", whole, frac)
	}
	return fmt.Sprintf("%d.%02d", whole, frac)
}

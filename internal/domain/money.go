package domain

import "fmt"

// ApplyDiscount returns price*(1-discount) in cents, rounded half-up at
// cent precision. discountBps is the discount in basis points (3000 = 30%).
func ApplyDiscount(priceCents, discountBps int64) int64 {
	if discountBps <= 0 {
		return priceCents
	}
	return (priceCents*(10000-discountBps) + 5000) / 10000
}

// FormatCents renders an amount in cents as a decimal string, e.g. 10000 -> "100.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

package format

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount renders a monetary amount for display: currency code, grouped
// thousands, two decimal places. Example: "IDR 125,000.00".
func Amount(d decimal.Decimal, currency string) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	sign := ""
	if neg {
		sign = "-"
	}
	if currency == "" {
		return fmt.Sprintf("%s%s.%s", sign, grouped, fracPart)
	}
	return fmt.Sprintf("%s %s%s.%s", currency, sign, grouped, fracPart)
}

// Timestamp renders an instant for display, e.g. "07 Mar 2026, 14:05".
func Timestamp(t time.Time) string {
	return t.Format("02 Jan 2006, 15:04")
}

// ShortName reduces a display name to at most two uppercase initials,
// for avatar badges. Empty input yields "?".
func ShortName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	initials := string([]rune(fields[0])[0])
	if len(fields) > 1 {
		initials += string([]rune(fields[len(fields)-1])[0])
	}
	return strings.ToUpper(initials)
}

// TransferReference generates a mock transfer reference of the shape
// TP-<year>-<5-digit-random>. Collisions are not checked.
func TransferReference(year int, rng *rand.Rand) string {
	return fmt.Sprintf("TP-%d-%05d", year, rng.Intn(100000))
}

// ScanCode generates a synthetic offline scan result code of the shape
// QR-<6-digit-random>.
func ScanCode(rng *rand.Rand) string {
	return fmt.Sprintf("QR-%06d", rng.Intn(1000000))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

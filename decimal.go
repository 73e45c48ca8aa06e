package rustacart

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalPrecision is the number of fractional digits FormatPrice renders.
var DecimalPrecision int32 = 4

var hundred = decimal.NewFromInt(100)

func ParseDecimal(str string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDecimal, str)
	}
	return d, nil
}

func MustDecimal(str string) decimal.Decimal {
	d, err := ParseDecimal(str)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromFloat converts a float price, rejecting NaN and infinities.
// 109.99 becomes exactly 109.99, not its binary approximation.
func DecimalFromFloat(fdata float64) (decimal.Decimal, error) {
	if math.IsNaN(fdata) || math.IsInf(fdata, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNonFinite, fdata)
	}
	return decimal.NewFromFloat(fdata), nil
}

func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(DecimalPrecision)
}

// formatPercentage renders 15 as "15" and 17.5 as "17.5".
func formatPercentage(d decimal.Decimal) string {
	return d.String()
}

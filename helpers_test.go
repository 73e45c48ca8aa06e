package rustacart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, MustDecimal(want).Equal(got), "want %s, got %s", want, got)
}

var (
	londonBus     = NewProduct("Lego London Bus", MustDecimal("109.99"))
	boutiqueHotel = NewProduct("Lego Boutique Hotel", MustDecimal("174.99"))
	unitedKingdom = NewRegion("United Kingdom", MustDecimal("5.99"))
	northernIre   = NewRegion("Northern Ireland", MustDecimal("7.99"))
	europeanUnion = NewRegion("European Union", MustDecimal("11.99"))
	standardVAT   = NewVAT(MustDecimal("15"))
)

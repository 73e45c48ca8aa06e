package rustacart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy decides how edge cases the plain operations accept silently are treated.
// The zero value accepts everything, which matches the unchecked operations.
type Policy struct {
	// RejectDuplicateNames makes a cart refuse a name it already holds instead of overwriting.
	RejectDuplicateNames bool `envconfig:"REJECT_DUPLICATE_NAMES" default:"false"`
	// RejectEmptyNames refuses names that are empty or only whitespace.
	RejectEmptyNames bool `envconfig:"REJECT_EMPTY_NAMES" default:"false"`
	// RejectNegativePrices refuses negative prices, shipping costs and VAT percentages.
	RejectNegativePrices bool `envconfig:"REJECT_NEGATIVE_PRICES" default:"false"`
	// RejectRepeatShipping refuses a second region on a basket that already ships.
	RejectRepeatShipping bool `envconfig:"REJECT_REPEAT_SHIPPING" default:"false"`
}

func DefaultPolicy() Policy {
	return Policy{}
}

func StrictPolicy() Policy {
	return Policy{
		RejectDuplicateNames: true,
		RejectEmptyNames:     true,
		RejectNegativePrices: true,
		RejectRepeatShipping: true,
	}
}

func (p Policy) Combine(a, b Product) (Basket, error) {
	if err := p.checkEntry("product", a.Name, a.Price); err != nil {
		return Basket{}, err
	}
	if err := p.checkEntry("product", b.Name, b.Price); err != nil {
		return Basket{}, err
	}
	return Combine(a, b), nil
}

func (p Policy) AddProduct(b Basket, product Product) (Basket, error) {
	if err := p.checkEntry("product", product.Name, product.Price); err != nil {
		return Basket{}, err
	}
	return b.AddProduct(product), nil
}

func (p Policy) ApplyShipping(b Basket, r Region) (Basket, error) {
	if err := p.checkEntry("region", r.Name, r.Price); err != nil {
		return Basket{}, err
	}
	if p.RejectRepeatShipping && b.Shipped {
		return Basket{}, fmt.Errorf("%w: ships to %q, refused %q", ErrAlreadyShipped, b.Region, r.Name)
	}
	return b.ApplyShipping(r), nil
}

func (p Policy) ApplyVAT(b Basket, v VAT) (Basket, error) {
	if p.RejectNegativePrices && v.Percentage.IsNegative() {
		return Basket{}, fmt.Errorf("%w: VAT at %s%%", ErrNegativePrice, formatPercentage(v.Percentage))
	}
	return b.ApplyVAT(v), nil
}

func (p Policy) checkEntry(kind, name string, price decimal.Decimal) error {
	if p.RejectEmptyNames && strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyName, kind)
	}
	if p.RejectNegativePrices && price.IsNegative() {
		return fmt.Errorf("%w: %s %q costs %s", ErrNegativePrice, kind, name, price)
	}
	return nil
}

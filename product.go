package rustacart

import "github.com/shopspring/decimal"

type Product struct {
	Name  string
	Price decimal.Decimal
}

// Region is a shipping destination; Price is the cost of shipping there.
type Region struct {
	Name  string
	Price decimal.Decimal
}

// VAT holds a tax rate in percent, so 17.5 means 17.5%.
type VAT struct {
	Percentage decimal.Decimal
}

func NewProduct(name string, price decimal.Decimal) Product {
	return Product{Name: name, Price: price}
}

func NewRegion(name string, price decimal.Decimal) Region {
	return Region{Name: name, Price: price}
}

func NewVAT(percentage decimal.Decimal) VAT {
	return VAT{Percentage: percentage}
}

// Amount returns the tax due on base.
func (v VAT) Amount(base decimal.Decimal) decimal.Decimal {
	return base.Mul(v.Percentage).Div(hundred)
}

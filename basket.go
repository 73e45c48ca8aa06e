package rustacart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Basket is an itemized running total. Every operation returns a new Basket and
// leaves its receiver untouched, including the Items backing array.
//
// Shipping and VAT do not commute: VAT is charged on the current total, so shipping
// applied before VAT is taxed and shipping applied after it is not.
type Basket struct {
	Items []string
	// Region is the name of the last region shipped to; meaningful only when Shipped.
	Region  string
	Shipped bool
	Price   decimal.Decimal
}

// NewBasket folds products into a basket in argument order.
func NewBasket(products ...Product) Basket {
	b := Basket{
		Items: make([]string, 0, len(products)),
		Price: decimal.Zero,
	}
	for _, p := range products {
		b.Items = append(b.Items, p.Name)
		b.Price = b.Price.Add(p.Price)
	}
	return b
}

func Combine(a, b Product) Basket {
	return NewBasket(a, b)
}

func (b Basket) AddProduct(p Product) Basket {
	return b.with(p.Name, b.Price.Add(p.Price))
}

// ApplyShipping adds r's shipping cost and records r as the basket's region.
// Applying a second region overwrites Region and appends another shipping line;
// use Policy.ApplyShipping to refuse that.
func (b Basket) ApplyShipping(r Region) Basket {
	next := b.with("Shipping to "+r.Name, b.Price.Add(r.Price))
	next.Region = r.Name
	next.Shipped = true
	return next
}

// ApplyVAT taxes the current total. Repeated application compounds.
func (b Basket) ApplyVAT(v VAT) Basket {
	var line string
	if b.Shipped {
		line = fmt.Sprintf("VAT for %s at %s%%", b.Region, formatPercentage(v.Percentage))
	} else {
		line = fmt.Sprintf("VAT at %s%%", formatPercentage(v.Percentage))
	}
	return b.with(line, b.Price.Add(v.Amount(b.Price)))
}

func (b Basket) Receipt() string {
	var sb strings.Builder
	for _, item := range b.Items {
		sb.WriteString(item)
		sb.WriteByte('\n')
	}
	sb.WriteString("Total: ")
	sb.WriteString(FormatPrice(b.Price))
	return sb.String()
}

func (b Basket) with(item string, price decimal.Decimal) Basket {
	items := make([]string, len(b.Items), len(b.Items)+1)
	copy(items, b.Items)
	return Basket{
		Items:   append(items, item),
		Region:  b.Region,
		Shipped: b.Shipped,
		Price:   price,
	}
}

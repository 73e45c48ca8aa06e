// Package rustacartmsgpack encodes baskets and cart catalogs with msgpack.
// Prices travel as decimal strings so no precision is lost on the wire.
package rustacartmsgpack

import (
	"time"

	rustacart "github.com/Wildhoney/Rustacart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

type Basket struct {
	UUID       string   `msgpack:"uuid,omitempty"`
	Items      []string `msgpack:"items,omitempty"`
	Region     string   `msgpack:"region,omitempty"`
	Shipped    bool     `msgpack:"shipped,omitempty"`
	Price      string   `msgpack:"price,omitempty"`
	DatetimeMs int64    `msgpack:"date,omitempty"`
}

type Product struct {
	Name  string `msgpack:"name,omitempty"`
	Price string `msgpack:"price,omitempty"`
}

type Region struct {
	Name  string `msgpack:"name,omitempty"`
	Price string `msgpack:"price,omitempty"`
}

type Catalog struct {
	CartID     string    `msgpack:"cart_id,omitempty"`
	Regions    []Region  `msgpack:"regions,omitempty"`
	Products   []Product `msgpack:"products,omitempty"`
	DatetimeMs int64     `msgpack:"date,omitempty"`
}

// NewBasket snapshots b as a receipt issued at the given time under a fresh UUID.
func NewBasket(b rustacart.Basket, at time.Time) Basket {
	return Basket{
		UUID:       uuid.NewString(),
		Items:      append([]string(nil), b.Items...),
		Region:     b.Region,
		Shipped:    b.Shipped,
		Price:      b.Price.String(),
		DatetimeMs: at.UnixMilli(),
	}
}

func ToBasket(m *Basket) (rustacart.Basket, error) {
	price, err := parsePrice(m.Price)
	if err != nil {
		return rustacart.Basket{}, err
	}
	items := make([]string, len(m.Items))
	copy(items, m.Items)
	return rustacart.Basket{
		Items:   items,
		Region:  m.Region,
		Shipped: m.Shipped,
		Price:   price,
	}, nil
}

// NewCatalog lists the cart's regions and products sorted by name.
func NewCatalog(c *rustacart.Cart, at time.Time) Catalog {
	catalog := Catalog{
		CartID:     c.ID,
		DatetimeMs: at.UnixMilli(),
	}
	for _, name := range c.RegionNames() {
		r, _ := c.Region(name)
		catalog.Regions = append(catalog.Regions, Region{Name: r.Name, Price: r.Price.String()})
	}
	for _, name := range c.ProductNames() {
		p, _ := c.Product(name)
		catalog.Products = append(catalog.Products, Product{Name: p.Name, Price: p.Price.String()})
	}
	return catalog
}

// ToCart rebuilds a cart from m. The cart keeps m.CartID unless opts set another ID,
// and every entry goes through the cart policy, so a strict policy can refuse a catalog.
func ToCart(m *Catalog, opts ...rustacart.Option) (*rustacart.Cart, error) {
	if m.CartID != "" {
		opts = append([]rustacart.Option{rustacart.WithID(m.CartID)}, opts...)
	}
	c := rustacart.New(opts...)
	for _, r := range m.Regions {
		price, err := parsePrice(r.Price)
		if err != nil {
			return nil, err
		}
		if err := c.InsertRegion(r.Name, price); err != nil {
			return nil, err
		}
	}
	for _, p := range m.Products {
		price, err := parsePrice(p.Price)
		if err != nil {
			return nil, err
		}
		if err := c.InsertProduct(p.Name, price); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func MarshalBasket(b Basket) ([]byte, error) {
	return msgpack.Marshal(&b)
}

func UnmarshalBasket(data []byte) (*Basket, error) {
	var b Basket
	if err := msgpack.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func MarshalCatalog(c Catalog) ([]byte, error) {
	return msgpack.Marshal(&c)
}

func UnmarshalCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// parsePrice treats an omitted price as zero.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return rustacart.ParseDecimal(s)
}

package rustacart

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Wildhoney/Rustacart/logx"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type EntryKind int

const (
	EntryRegion EntryKind = iota + 1
	EntryProduct
)

func (k EntryKind) String() string {
	switch k {
	case EntryRegion:
		return "region"
	case EntryProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Entry describes an accepted insert. Replaced is set when the name was already present.
type Entry struct {
	Kind     EntryKind
	Name     string
	Price    decimal.Decimal
	Replaced bool
}

type HookFunc func(e Entry, c *Cart) error

// Cart catalogs regions and products by name. It is not safe for concurrent use.
type Cart struct {
	ID string

	regions  map[string]Region
	products map[string]Product
	hooks    []HookFunc
	policy   Policy
	logger   zerolog.Logger
}

type Option func(*Cart)

func WithPolicy(p Policy) Option {
	return func(c *Cart) { c.policy = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Cart) { c.logger = l }
}

func WithID(id string) Option {
	return func(c *Cart) { c.ID = id }
}

// New returns an empty cart. Without WithLogger it logs through the logx logger
// current at the time of the call.
func New(opts ...Option) *Cart {
	c := &Cart{
		ID:       uuid.NewString(),
		regions:  make(map[string]Region),
		products: make(map[string]Product),
		logger:   logx.Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("cart", c.ID).Logger()
	return c
}

func (c *Cart) Policy() Policy {
	return c.policy
}

// AddRegion inserts or replaces the region called name. A policy rejection or hook
// failure is logged, not returned; use InsertRegion to observe it.
func (c *Cart) AddRegion(name string, price decimal.Decimal) {
	c.report(EntryRegion, name, c.InsertRegion(name, price))
}

func (c *Cart) InsertRegion(name string, price decimal.Decimal) error {
	_, exists := c.regions[name]
	if err := c.admit(EntryRegion, name, price, exists); err != nil {
		return err
	}
	c.regions[name] = NewRegion(name, price)
	return c.accepted(Entry{Kind: EntryRegion, Name: name, Price: price, Replaced: exists})
}

func (c *Cart) CountRegions() int {
	return len(c.regions)
}

// AddProduct inserts or replaces the product called name, with the same reporting
// as AddRegion.
func (c *Cart) AddProduct(name string, price decimal.Decimal) {
	c.report(EntryProduct, name, c.InsertProduct(name, price))
}

func (c *Cart) InsertProduct(name string, price decimal.Decimal) error {
	_, exists := c.products[name]
	if err := c.admit(EntryProduct, name, price, exists); err != nil {
		return err
	}
	c.products[name] = NewProduct(name, price)
	return c.accepted(Entry{Kind: EntryProduct, Name: name, Price: price, Replaced: exists})
}

func (c *Cart) CountProducts() int {
	return len(c.products)
}

func (c *Cart) Region(name string) (Region, bool) {
	r, ok := c.regions[name]
	return r, ok
}

func (c *Cart) Product(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

func (c *Cart) RegionNames() []string {
	names := make([]string, 0, len(c.regions))
	for name := range c.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Cart) ProductNames() []string {
	names := make([]string, 0, len(c.products))
	for name := range c.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddHook registers fn to run after every accepted insert, in registration order.
func (c *Cart) AddHook(fn HookFunc) {
	c.hooks = append(c.hooks, fn)
}

// Quote folds the named products into a basket, ships it to region and applies vat,
// checking every step against the cart's policy.
func (c *Cart) Quote(region string, vat VAT, products ...string) (Basket, error) {
	if len(products) == 0 {
		return Basket{}, ErrNoProducts
	}

	b := NewBasket()
	for _, name := range products {
		p, ok := c.products[name]
		if !ok {
			return Basket{}, fmt.Errorf("%w: %q", ErrUnknownProduct, name)
		}
		var err error
		if b, err = c.policy.AddProduct(b, p); err != nil {
			return Basket{}, err
		}
	}

	r, ok := c.regions[region]
	if !ok {
		return Basket{}, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	b, err := c.policy.ApplyShipping(b, r)
	if err != nil {
		return Basket{}, err
	}
	if b, err = c.policy.ApplyVAT(b, vat); err != nil {
		return Basket{}, err
	}

	c.logger.Info().
		Str("region", region).
		Strs("items", b.Items).
		Str("total", b.Price.String()).
		Msg("quoted basket")
	return b, nil
}

func (c *Cart) admit(kind EntryKind, name string, price decimal.Decimal, exists bool) error {
	if err := c.policy.checkEntry(kind.String(), name, price); err != nil {
		return err
	}
	if exists && c.policy.RejectDuplicateNames {
		return fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, name)
	}
	return nil
}

func (c *Cart) accepted(e Entry) error {
	msg := "inserted catalog entry"
	if e.Replaced {
		msg = "replaced catalog entry"
	}
	c.logger.Debug().
		Stringer("kind", e.Kind).
		Str("name", e.Name).
		Str("price", e.Price.String()).
		Msg(msg)
	return c.runHooks(e)
}

func (c *Cart) runHooks(e Entry) error {
	for _, hook := range c.hooks {
		if err := hook(e, c); err != nil {
			return fmt.Errorf("%w: %w", ErrHook, err)
		}
	}
	return nil
}

func (c *Cart) report(kind EntryKind, name string, err error) {
	if err == nil {
		return
	}
	msg := "catalog entry rejected"
	if errors.Is(err, ErrHook) {
		msg = "catalog hook failed"
	}
	c.logger.Warn().Err(err).Stringer("kind", kind).Str("name", name).Msg(msg)
}

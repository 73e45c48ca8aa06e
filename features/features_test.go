package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	rustacart "github.com/Wildhoney/Rustacart"
	"github.com/cucumber/godog"
	"github.com/rs/zerolog"
)

type cartTestContext struct {
	policy   rustacart.Policy
	products map[string]rustacart.Product
	basket   rustacart.Basket
	cart     *rustacart.Cart
	err      error
}

func (c *cartTestContext) reset() {
	c.policy = rustacart.DefaultPolicy()
	c.products = make(map[string]rustacart.Product)
	c.basket = rustacart.Basket{}
	c.cart = nil
	c.err = nil
}

// record keeps the first refusal so later steps can assert on it.
func (c *cartTestContext) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *cartTestContext) aProductPriced(name, price string) error {
	c.products[name] = rustacart.NewProduct(name, rustacart.MustDecimal(price))
	return nil
}

func (c *cartTestContext) thePolicyRejectsRepeatShipping() error {
	c.policy.RejectRepeatShipping = true
	return nil
}

func (c *cartTestContext) iCombineWith(a, b string) error {
	pa, ok := c.products[a]
	if !ok {
		return fmt.Errorf("no product %q in scenario", a)
	}
	pb, ok := c.products[b]
	if !ok {
		return fmt.Errorf("no product %q in scenario", b)
	}
	basket, err := c.policy.Combine(pa, pb)
	c.record(err)
	if err == nil {
		c.basket = basket
	}
	return nil
}

func (c *cartTestContext) iShipToFor(region, price string) error {
	basket, err := c.policy.ApplyShipping(c.basket, rustacart.NewRegion(region, rustacart.MustDecimal(price)))
	c.record(err)
	if err == nil {
		c.basket = basket
	}
	return nil
}

func (c *cartTestContext) iApplyVATAt(percentage string) error {
	basket, err := c.policy.ApplyVAT(c.basket, rustacart.NewVAT(rustacart.MustDecimal(percentage)))
	c.record(err)
	if err == nil {
		c.basket = basket
	}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = rustacart.New(rustacart.WithLogger(zerolog.Nop()))
	return nil
}

func (c *cartTestContext) anEmptyCartThatRejectsDuplicateNames() error {
	c.cart = rustacart.New(
		rustacart.WithLogger(zerolog.Nop()),
		rustacart.WithPolicy(rustacart.Policy{RejectDuplicateNames: true}),
	)
	return nil
}

func (c *cartTestContext) iAddTheProductPriced(name, price string) error {
	c.record(c.cart.InsertProduct(name, rustacart.MustDecimal(price)))
	return nil
}

func (c *cartTestContext) iAddTheRegionPriced(name, price string) error {
	c.record(c.cart.InsertRegion(name, rustacart.MustDecimal(price)))
	return nil
}

func (c *cartTestContext) iQuoteShippingToWithVATAtFor(region, percentage string, table *godog.Table) error {
	var names []string
	for _, row := range table.Rows {
		names = append(names, row.Cells[0].Value)
	}
	basket, err := c.cart.Quote(region, rustacart.NewVAT(rustacart.MustDecimal(percentage)), names...)
	c.record(err)
	if err == nil {
		c.basket = basket
	}
	return nil
}

func (c *cartTestContext) theBasketPriceIs(price string) error {
	if !rustacart.MustDecimal(price).Equal(c.basket.Price) {
		return fmt.Errorf("expected price %s, got %s", price, c.basket.Price)
	}
	return nil
}

func (c *cartTestContext) theBasketHasNoRegion() error {
	if c.basket.Shipped || c.basket.Region != "" {
		return fmt.Errorf("expected no region, got %q", c.basket.Region)
	}
	return nil
}

func (c *cartTestContext) theBasketRegionIs(region string) error {
	if !c.basket.Shipped || c.basket.Region != region {
		return fmt.Errorf("expected region %q, got %q (shipped=%t)", region, c.basket.Region, c.basket.Shipped)
	}
	return nil
}

func (c *cartTestContext) theBasketItemsAre(table *godog.Table) error {
	if len(table.Rows) != len(c.basket.Items) {
		return fmt.Errorf("expected %d items, got %d: %q", len(table.Rows), len(c.basket.Items), c.basket.Items)
	}
	for i, row := range table.Rows {
		if want := row.Cells[0].Value; c.basket.Items[i] != want {
			return fmt.Errorf("item %d: expected %q, got %q", i, want, c.basket.Items[i])
		}
	}
	return nil
}

func (c *cartTestContext) theLastItemIs(item string) error {
	if len(c.basket.Items) == 0 {
		return errors.New("basket has no items")
	}
	if got := c.basket.Items[len(c.basket.Items)-1]; got != item {
		return fmt.Errorf("expected last item %q, got %q", item, got)
	}
	return nil
}

func (c *cartTestContext) theStepIsRefusedWith(substring string) error {
	if c.err == nil {
		return errors.New("expected a refusal but every step succeeded")
	}
	if !strings.Contains(c.err.Error(), substring) {
		return fmt.Errorf("expected error containing %q, got %q", substring, c.err.Error())
	}
	return nil
}

func (c *cartTestContext) theCartHasProducts(n int) error {
	if got := c.cart.CountProducts(); got != n {
		return fmt.Errorf("expected %d products, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasRegions(n int) error {
	if got := c.cart.CountRegions(); got != n {
		return fmt.Errorf("expected %d regions, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theRegionCosts(name, price string) error {
	r, ok := c.cart.Region(name)
	if !ok {
		return fmt.Errorf("region %q not in cart", name)
	}
	if !rustacart.MustDecimal(price).Equal(r.Price) {
		return fmt.Errorf("expected region %q to cost %s, got %s", name, price, r.Price)
	}
	return nil
}

func (c *cartTestContext) theProductCosts(name, price string) error {
	p, ok := c.cart.Product(name)
	if !ok {
		return fmt.Errorf("product %q not in cart", name)
	}
	if !rustacart.MustDecimal(price).Equal(p.Price) {
		return fmt.Errorf("expected product %q to cost %s, got %s", name, price, p.Price)
	}
	return nil
}

const amount = `(-?\d+(?:\.\d+)?)`

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^a product "([^"]*)" priced `+amount+`$`, tc.aProductPriced)
	ctx.Step(`^the policy rejects repeat shipping$`, tc.thePolicyRejectsRepeatShipping)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^an empty cart that rejects duplicate names$`, tc.anEmptyCartThatRejectsDuplicateNames)

	// When
	ctx.Step(`^I combine "([^"]*)" with "([^"]*)"$`, tc.iCombineWith)
	ctx.Step(`^I ship to "([^"]*)" for `+amount+`$`, tc.iShipToFor)
	ctx.Step(`^I apply VAT at `+amount+`%$`, tc.iApplyVATAt)
	ctx.Step(`^I add the product "([^"]*)" priced `+amount+`$`, tc.iAddTheProductPriced)
	ctx.Step(`^I add the region "([^"]*)" priced `+amount+`$`, tc.iAddTheRegionPriced)
	ctx.Step(`^I quote shipping to "([^"]*)" with VAT at `+amount+`% for:$`, tc.iQuoteShippingToWithVATAtFor)

	// Then
	ctx.Step(`^the basket price is `+amount+`$`, tc.theBasketPriceIs)
	ctx.Step(`^the basket has no region$`, tc.theBasketHasNoRegion)
	ctx.Step(`^the basket region is "([^"]*)"$`, tc.theBasketRegionIs)
	ctx.Step(`^the basket items are:$`, tc.theBasketItemsAre)
	ctx.Step(`^the last item is "([^"]*)"$`, tc.theLastItemIs)
	ctx.Step(`^the step is refused with "([^"]*)"$`, tc.theStepIsRefusedWith)
	ctx.Step(`^the cart has (\d+) products$`, tc.theCartHasProducts)
	ctx.Step(`^the cart has (\d+) regions$`, tc.theCartHasRegions)
	ctx.Step(`^the region "([^"]*)" costs `+amount+`$`, tc.theRegionCosts)
	ctx.Step(`^the product "([^"]*)" costs `+amount+`$`, tc.theProductCosts)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"basket.feature", "cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

package main

import (
	"fmt"
	"time"

	rustacart "github.com/Wildhoney/Rustacart"
	"github.com/Wildhoney/Rustacart/config"
	"github.com/Wildhoney/Rustacart/logx"
	rustacartmsgpack "github.com/Wildhoney/Rustacart/msgpack"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}
	if err := logx.Init(cfg.LoggerOpts()); err != nil {
		panic(err)
	}

	// Build a basket by hand
	bus := rustacart.NewProduct("Lego London Bus", rustacart.MustDecimal("109.99"))
	hotel := rustacart.NewProduct("Lego Boutique Hotel", rustacart.MustDecimal("174.99"))
	uk := rustacart.NewRegion("United Kingdom", rustacart.MustDecimal("5.99"))
	vat := rustacart.NewVAT(rustacart.MustDecimal("15"))

	basket := rustacart.Combine(bus, hotel).ApplyShipping(uk).ApplyVAT(vat)
	fmt.Println(basket.Receipt())

	// Catalog the same entries in a cart and quote from it
	cart := rustacart.New(cfg.CartOptions()...)
	cart.AddProduct(bus.Name, bus.Price)
	cart.AddProduct(hotel.Name, hotel.Price)
	cart.AddRegion("United Kingdom", uk.Price)
	cart.AddRegion("Northern Ireland", rustacart.MustDecimal("7.99"))
	cart.AddRegion("European Union", rustacart.MustDecimal("11.99"))
	fmt.Printf("Cart %s: %d products, %d regions\n", cart.ID, cart.CountProducts(), cart.CountRegions())

	for _, region := range cart.RegionNames() {
		quote, err := cart.Quote(region, vat, bus.Name, hotel.Name)
		if err != nil {
			logx.Error().Err(err).Str("region", region).Msg("quote failed")
			continue
		}
		fmt.Printf("%-16s %s\n", region, rustacart.FormatPrice(quote.Price))
	}

	data, err := rustacartmsgpack.MarshalBasket(rustacartmsgpack.NewBasket(basket, time.Now()))
	if err != nil {
		logx.Fatal().Err(err).Msg("encode basket")
	}
	fmt.Printf("Encoded receipt: %d bytes\n", len(data))
}

package main

import (
	"fmt"
	"time"

	rustacart "github.com/Wildhoney/Rustacart"
	"github.com/Wildhoney/Rustacart/logx"
	rustacartmsgpack "github.com/Wildhoney/Rustacart/msgpack"
)

// chunkSize mimics a small datagram payload so baskets straddle chunk boundaries.
const chunkSize = 16

func main() {
	if err := logx.Init(); err != nil {
		panic(err)
	}

	cart := rustacart.New()
	cart.AddProduct("Lego London Bus", rustacart.MustDecimal("109.99"))
	cart.AddProduct("Lego Boutique Hotel", rustacart.MustDecimal("174.99"))
	cart.AddRegion("United Kingdom", rustacart.MustDecimal("5.99"))
	cart.AddRegion("Northern Ireland", rustacart.MustDecimal("7.99"))
	cart.AddRegion("European Union", rustacart.MustDecimal("11.99"))
	vat := rustacart.NewVAT(rustacart.MustDecimal("15"))

	// ---------------- Sender ----------------

	var stream []byte
	for _, region := range cart.RegionNames() {
		quote, err := cart.Quote(region, vat, cart.ProductNames()...)
		if err != nil {
			logx.Fatal().Err(err).Str("region", region).Msg("quote")
		}
		data, err := rustacartmsgpack.MarshalBasket(rustacartmsgpack.NewBasket(quote, time.Now()))
		if err != nil {
			logx.Fatal().Err(err).Msg("encode")
		}
		stream = append(stream, data...)
	}

	// ---------------- Receiver ----------------

	var rb rustacartmsgpack.BasketBuffer
	for start := 0; start < len(stream); start += chunkSize {
		end := min(start+chunkSize, len(stream))
		received, err := rb.Feed(stream[start:end])
		if err != nil {
			logx.Fatal().Err(err).Msg("decode")
		}
		for _, m := range received {
			b, err := rustacartmsgpack.ToBasket(m)
			if err != nil {
				logx.Fatal().Err(err).Str("uuid", m.UUID).Msg("convert")
			}
			fmt.Printf("Receipt %s\n%s\n\n", m.UUID, b.Receipt())
		}
	}
	logx.Info().Int("pending", rb.Pending()).Int("bytes", len(stream)).Msg("stream drained")
}

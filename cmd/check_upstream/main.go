package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/vitos/crypto_dashboard/internal/domain"
	"github.com/vitos/crypto_dashboard/internal/infrastructure/coingecko"
	"github.com/vitos/crypto_dashboard/internal/usecase"
)

// check_upstream hits the markets and coin endpoints once and prints what the
// dashboard would render, to verify connectivity and payload shape.
func main() {
	baseURL := pflag.String("base-url", coingecko.DefaultBaseURL, "upstream API base URL")
	apiKey := pflag.String("api-key", "", "CoinGecko demo API key")
	coinID := pflag.String("coin", "", "coin id for the detail request (defaults to the first listed coin)")
	timeout := pflag.Duration("timeout", 10*time.Second, "request timeout")
	pflag.Parse()

	client := coingecko.NewClient(*baseURL, *timeout, coingecko.WithAPIKey(*apiKey))
	ctx := context.Background()

	fmt.Println("Fetching markets...")
	coins, err := client.ListMarkets(ctx)
	if err != nil {
		fail("markets", err)
	}
	rows, err := usecase.NewListRenderer().Render(coins)
	if err != nil {
		fail("markets", err)
	}
	for _, r := range rows {
		fmt.Printf("%-20s %14s %22s %10s\n", r.Name, r.Price, r.MarketCap, r.Change)
	}

	id := *coinID
	if id == "" {
		id = coins[0].ID
	}
	fmt.Printf("\nFetching %s...\n", id)
	coin, err := client.GetCoin(ctx, id)
	if err != nil {
		fail("coin", err)
	}
	panel, err := usecase.NewDetailRenderer().Render(coin)
	if err != nil {
		fail("coin", err)
	}
	fmt.Println(panel.Title)
	for _, f := range panel.Fields {
		fmt.Printf("  %-20s %s\n", f.Label+":", f.Value)
	}
}

func fail(what string, err error) {
	fmt.Printf("Error fetching %s (%s): %v\n", what, domain.ErrorKind(err), err)
	os.Exit(1)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/olopa-labs/olopa/internal/apiclient"
	"github.com/olopa-labs/olopa/internal/walletsession"
)

// walletctl drives the wallet session against a running API from the
// terminal: connect, demo, refresh, balance, create, list.
func main() {
	api := flag.String("api", envOr("OLOPA_API", "http://localhost:8080"), "Base URL of the marketplace API")
	walletPath := flag.String("wallet", defaultWalletPath(), "Path of the wallet session file")
	title := flag.String("title", "", "Contract title (create)")
	desc := flag.String("desc", "", "Contract description (create)")
	amount := flag.Float64("amount", 0, "Contract amount in SOL (create)")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		log.Fatalf("usage: walletctl [flags] connect|demo|refresh|balance|create|list")
	}

	client := apiclient.New(*api)
	manager, err := walletsession.NewManager(walletsession.Config{
		Storage: &walletsession.FileStorage{Path: *walletPath},
		API:     client,
		Mirrors: []walletsession.Mirror{&walletsession.WriterMirror{W: os.Stdout}},
	})
	if err != nil {
		log.Fatalf("failed to open wallet session: %v", err)
	}

	ctx := context.Background()
	switch cmd {
	case "connect":
		// No injected provider exists in a terminal; this falls back to demo.
		if _, err := manager.Connect(ctx); err != nil {
			log.Fatalf("connect failed: %v", err)
		}
	case "demo":
		if _, err := manager.InitDemo(); err != nil {
			log.Fatalf("demo init failed: %v", err)
		}
	case "refresh":
		manager.RefreshBalance(ctx)
	case "balance":
		s := manager.Session()
		fmt.Printf("%s: %s SOL\n", s.ShortAddress(), formatBalance(s.Balance))
	case "create":
		if *title == "" || *amount <= 0 {
			log.Fatalf("usage: walletctl create -title 'Build a site' -amount 5 [-desc '...']")
		}
		created, err := manager.CreateContract(ctx, *title, *desc, *amount)
		if err != nil {
			log.Fatalf("contract creation failed: %v", err)
		}
		if created.Status == "simulated" {
			fmt.Printf("Contract created in simulation mode. Simulated TX: %s\n", created.TransactionSignature)
		} else {
			fmt.Printf("Demo contract created: %s\n", created.Title)
		}
	case "list":
		list, err := client.ListContracts(ctx)
		if err != nil {
			log.Fatalf("failed to fetch contracts: %v", err)
		}
		if len(list) == 0 {
			fmt.Println("No contracts yet")
			return
		}
		// Newest first
		for i := len(list) - 1; i >= 0; i-- {
			c := list[i]
			fmt.Printf("%s — %s SOL [%s]\n", c.Title, formatBalance(c.Amount), c.Status)
			if c.Description != "" {
				fmt.Printf("  %s\n", c.Description)
			}
		}
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultWalletPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "olopa_wallet.json"
	}
	return filepath.Join(home, ".olopa", "wallet.json")
}

func formatBalance(v float64) string {
	return fmt.Sprintf("%g", v)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"llm-signal-bot/internal/engine"
	"llm-signal-bot/internal/types"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	jrnl := initializeJournal(ctx, cfg)
	quoter := initializeQuoter(ctx, cfg)
	oracle := initializeOracle(ctx, cfg)
	gateway := initializeGateway(ctx, cfg)

	eng := engine.New(cfg, quoter, oracle, gateway, jrnl)
	rec := eng.Run(ctx)

	if p, err := jrnl.WriteDailyCSV(); err == nil && p != "" {
		fmt.Println("Daily summary written:", p)
	}

	printSummary(rec)
	shutdown(ctx)

	// partial failures are embedded in the record itself; the process
	// only exits non-zero on startup faults above
	os.Exit(0)
}

func printSummary(rec types.RunRecord) {
	fmt.Println("✔ Bot run completed")
	fmt.Println("Signal =", rec.Signal)
	fmt.Println("Oracle Output =", truncate(rec.OracleReply, 250), "...")
	fmt.Printf("Order Response: status=%s detail=%s\n", rec.OrderResponse.Status, rec.OrderResponse.Detail)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

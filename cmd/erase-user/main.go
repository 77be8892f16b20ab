// Command erase-user permanently removes every journal entry belonging to a
// user. It backs data-removal requests and is meant to be run by an operator,
// not exposed over the API.
//
// Usage:
//
//	erase-user --user=<user-id>
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openjournal/journal-backend/internal/adapter/postgres/entry"
)

func main() {
	userID := flag.String("user", "", "id of the user whose entries to erase")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Usage: erase-user --user=<user-id>")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := entry.New(pool).DeleteByUser(ctx, *userID); err != nil {
		log.Fatalf("erase entries: %v", err)
	}

	fmt.Printf("All journal entries for user %q erased.\n", *userID)
}

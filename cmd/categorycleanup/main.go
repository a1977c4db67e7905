// Command categorycleanup rewrites every stored product category to its
// normalized spelling and prints the change log. The same batch runs behind
// POST /admin/categories/cleanup; the CLI exists for offline maintenance.
package main

import (
	"fmt"
	"log"

	category "github.com/prasetyoadi/warung-assistant/internal/category"
	"github.com/prasetyoadi/warung-assistant/internal/config"
	"github.com/prasetyoadi/warung-assistant/internal/db"
	"github.com/prasetyoadi/warung-assistant/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}
	defer database.Close()

	log.Println("starting category cleanup...")

	result, err := category.Cleanup(repo.NewPostgresProductRepository(database))
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}

	fmt.Printf("cleanup complete, %d products updated\n", result.Updated)
	if len(result.Changes) == 0 {
		fmt.Println("no changes needed, categories are already clean")
		return
	}
	for _, c := range result.Changes {
		fmt.Printf("%q -> %q\n", c.From, c.To)
	}
}

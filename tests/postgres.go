package tests

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prior-it/customers/postgres"
)

// DB connects to the database in DATABASE_URL and migrates a fresh schema that is dropped again
// when the test finishes. Tests are skipped if no database is configured.
func DB(t *testing.T) *postgres.DB {
	t.Helper()
	ctx := context.Background()
	err := godotenv.Load("../.env")
	if err != nil {
		log.Printf("Could not load the .env file: %v", err)
	}
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("To test database functionality, set the DATABASE_URL env variable to a valid database")
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	db, err := postgres.NewDB(ctx, postgres.Options{URL: url, Schema: schema})
	if err != nil {
		t.Fatalf("Cannot connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.DeleteSchema(context.Background(), schema); err != nil {
			log.Printf("Cannot delete test schema: %v", err)
		}
		db.Close()
	})

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Cannot migrate test database: %v", err)
	}
	return db
}

func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

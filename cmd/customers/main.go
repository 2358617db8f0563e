package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prior-it/customers/bootstrap"
	"github.com/prior-it/customers/config"
	"github.com/prior-it/customers/postgres"
)

var (
	configDir   string
	migrateDown bool
	showVersion bool
)

func init() {
	flag.Usage = helpMessage
	flag.StringVar(&configDir, "config", ".", "Directory containing config.toml")
	flag.BoolVar(&migrateDown, "migrate-down", false, "Roll back the latest database migration and exit")
	flag.BoolVar(&showVersion, "v", false, "Show version information")
}

func helpMessage() {
	output := flag.CommandLine.Output()
	fmt.Fprintf(output, "Usage of %s:\n\n", os.Args[0])
	fmt.Fprintln(output, "Runs the customer REST API. Settings are read from config.toml, .env and the environment.")
	fmt.Fprintln(output, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	cfg, err := config.Load(os.DirFS(configDir))
	if err != nil {
		log.Fatalf("Could not load the configuration: %v\n", err)
	}
	if showVersion {
		fmt.Println(cfg.App.Name, cfg.App.Version)
		return
	}

	ctx := context.Background()
	if migrateDown {
		if err := rollback(ctx, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	s, err := bootstrap.Full(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not start the server: %v\n", err)
	}
	if err := s.Start(ctx, nil); err != nil {
		log.Fatalf("Server stopped unexpectedly: %v\n", err)
	}
}

func rollback(ctx context.Context, cfg *config.Config) error {
	if !cfg.UsesDatabase() {
		return fmt.Errorf("no database configured, set DATABASE_URL to roll back migrations")
	}
	db, err := postgres.NewDB(ctx, postgres.Options{URL: cfg.Database.URL, Schema: cfg.Database.Schema})
	if err != nil {
		return err
	}
	defer db.Close()
	return db.MigrateDown(ctx)
}

package state

import (
	"context"
	"log/slog"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/memory"
	"github.com/prior-it/customers/metrics"
	"github.com/prior-it/customers/postgres"
	"github.com/prior-it/customers/service"
)

// State is passed to every handler.
type State struct {
	Customers *service.CustomerService
	Metrics   *metrics.Metrics
	// DB is nil when the application runs on the in-memory store.
	DB *postgres.DB

	customers core.CustomerRepository
}

// New creates a state backed by the postgres database.
func New(db *postgres.DB, m *metrics.Metrics, logger *slog.Logger) *State {
	customers := postgres.NewCustomerStore(db)
	return &State{
		Customers: service.NewCustomerService(customers, postgres.NewAddressStore(db), logger),
		Metrics:   m,
		DB:        db,
		customers: customers,
	}
}

// NewInMemory creates a state backed by an in-memory store. All data is lost on shutdown.
func NewInMemory(m *metrics.Metrics, logger *slog.Logger) *State {
	store := memory.New()
	return &State{
		Customers: service.NewCustomerService(store, store, logger),
		Metrics:   m,
		customers: store,
	}
}

// Repository returns the customer store the service works on.
func (s *State) Repository() core.CustomerRepository {
	return s.customers
}

// Ping checks whether the store is reachable.
func (s *State) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Ping(ctx)
}

func (s *State) Close(_ context.Context) {
	if s.DB != nil {
		slog.Info("Closing database connection pool")
		s.DB.Close()
	}
}

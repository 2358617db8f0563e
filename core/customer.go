package core

import (
	"context"
	"time"
)

//go:generate mockgen -source=customer.go -destination=mocks/repository.go -package=mocks

/**
 * DOMAIN
 */

// Customer always owns exactly one Address once persisted.
type Customer struct {
	ID           CustomerID
	FirstName    string
	LastName     string
	Age          int
	Address      Address
	CreationTime time.Time
	UpdateTime   time.Time
}

/**
 * APPLICATION
 */

// CustomerRepository persists customers together with their address.
type CustomerRepository interface {
	// Retrieve the customer with the specified id or ErrNotFound if no such customer exists.
	FindByID(ctx context.Context, id CustomerID) (*Customer, error)
	// Store the customer and its address. A customer without a (known) id is inserted and receives
	// store-assigned ids and timestamps, an existing customer is updated in place.
	Save(ctx context.Context, customer Customer) (*Customer, error)
	// Retrieve all existing customers, ordered by id.
	FindAll(ctx context.Context) ([]Customer, error)
	// Retrieve the customers matching both names, ordered by id.
	FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]Customer, error)
	// Retrieve the customers matching either name, ordered by id.
	FindByFirstNameOrLastName(ctx context.Context, firstName, lastName string) ([]Customer, error)
}

// AddressRepository persists addresses that are already owned by a customer.
type AddressRepository interface {
	// Store the address. An address with an id overwrites the existing row with that id; if no
	// such row exists this returns a nil address without an error.
	SaveAddress(ctx context.Context, address Address) (*Address, error)
}

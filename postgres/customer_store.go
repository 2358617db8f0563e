package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/postgres/internal/sqlc"
)

func NewCustomerStore(DB *DB) *CustomerStore {
	q := sqlc.New(DB)
	return &CustomerStore{DB, q}
}

// Postgres implementation of the core CustomerRepository interface.
type CustomerStore struct {
	db *DB
	q  *sqlc.Queries
}

// Force struct to implement the core interface
var _ core.CustomerRepository = &CustomerStore{}

// FindByID implements core.CustomerRepository.FindByID
func (c *CustomerStore) FindByID(ctx context.Context, id core.CustomerID) (*core.Customer, error) {
	row, err := c.q.GetCustomer(ctx, int64(id))
	if err != nil {
		return nil, convertPgError(err)
	}
	customer := convertCustomer(row.Customer, row.Address)
	return &customer, nil
}

// Save implements core.CustomerRepository.Save
func (c *CustomerStore) Save(ctx context.Context, customer core.Customer) (*core.Customer, error) {
	var saved core.Customer
	err := pgx.BeginFunc(ctx, c.db, func(tx pgx.Tx) error {
		q := c.q.WithTx(tx)
		if customer.ID != 0 {
			updated, found, err := update(ctx, q, customer)
			if err != nil || found {
				saved = updated
				return err
			}
		}
		created, err := create(ctx, q, customer)
		saved = created
		return err
	})
	if err != nil {
		return nil, convertPgError(err)
	}
	return &saved, nil
}

// create inserts the address first since the customer row references it.
func create(ctx context.Context, q *sqlc.Queries, customer core.Customer) (core.Customer, error) {
	address, err := q.CreateAddress(ctx, createAddressParams(customer.Address))
	if err != nil {
		return core.Customer{}, fmt.Errorf("cannot create address: %w", err)
	}
	row, err := q.CreateCustomer(ctx, sqlc.CreateCustomerParams{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Age:       int32(customer.Age),
		AddressID: address.ID,
	})
	if err != nil {
		return core.Customer{}, fmt.Errorf("cannot create customer: %w", err)
	}
	return convertCustomer(row, address), nil
}

// update returns false if no customer with the id exists.
func update(ctx context.Context, q *sqlc.Queries, customer core.Customer) (core.Customer, bool, error) {
	row, err := q.UpdateCustomer(ctx, sqlc.UpdateCustomerParams{
		ID:        int64(customer.ID),
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Age:       int32(customer.Age),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Customer{}, false, nil
	} else if err != nil {
		return core.Customer{}, false, fmt.Errorf("cannot update customer %v: %w", customer.ID, err)
	}

	params := updateAddressParams(customer.Address)
	params.ID = row.AddressID
	params.CreationTime = pgtype.Timestamptz{}
	address, err := q.UpdateAddress(ctx, params)
	if err != nil {
		return core.Customer{}, false, fmt.Errorf("cannot update address of customer %v: %w", customer.ID, err)
	}
	return convertCustomer(row, address), true, nil
}

// FindAll implements core.CustomerRepository.FindAll
func (c *CustomerStore) FindAll(ctx context.Context) ([]core.Customer, error) {
	rows, err := c.q.ListCustomers(ctx)
	if err != nil {
		return nil, convertPgError(err)
	}
	customers := make([]core.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, convertCustomer(row.Customer, row.Address))
	}
	return customers, nil
}

// FindByFirstNameAndLastName implements core.CustomerRepository.FindByFirstNameAndLastName
func (c *CustomerStore) FindByFirstNameAndLastName(
	ctx context.Context,
	firstName, lastName string,
) ([]core.Customer, error) {
	rows, err := c.q.ListCustomersByFirstNameAndLastName(ctx, firstName, lastName)
	if err != nil {
		return nil, convertPgError(err)
	}
	customers := make([]core.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, convertCustomer(row.Customer, row.Address))
	}
	return customers, nil
}

// FindByFirstNameOrLastName implements core.CustomerRepository.FindByFirstNameOrLastName
func (c *CustomerStore) FindByFirstNameOrLastName(
	ctx context.Context,
	firstName, lastName string,
) ([]core.Customer, error) {
	rows, err := c.q.ListCustomersByFirstNameOrLastName(ctx, firstName, lastName)
	if err != nil {
		return nil, convertPgError(err)
	}
	customers := make([]core.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, convertCustomer(row.Customer, row.Address))
	}
	return customers, nil
}

func convertCustomer(customer sqlc.Customer, address sqlc.Address) core.Customer {
	return core.Customer{
		ID:           core.CustomerID(customer.ID),
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Age:          int(customer.Age),
		Address:      *convertAddress(address),
		CreationTime: customer.CreationTime.Time,
		UpdateTime:   customer.UpdateTime.Time,
	}
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/postgres/internal/sqlc"
)

func NewAddressStore(DB *DB) *AddressStore {
	q := sqlc.New(DB)
	return &AddressStore{q}
}

// Postgres implementation of the core AddressRepository interface.
type AddressStore struct {
	q *sqlc.Queries
}

// Force struct to implement the core interface
var _ core.AddressRepository = &AddressStore{}

// SaveAddress implements core.AddressRepository.SaveAddress
func (a *AddressStore) SaveAddress(ctx context.Context, address core.Address) (*core.Address, error) {
	if !address.IsPersisted() {
		created, err := a.q.CreateAddress(ctx, createAddressParams(address))
		if err != nil {
			return nil, convertPgError(err)
		}
		return convertAddress(created), nil
	}

	updated, err := a.q.UpdateAddress(ctx, updateAddressParams(address))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, convertPgError(err)
	}
	return convertAddress(updated), nil
}

func createAddressParams(address core.Address) sqlc.CreateAddressParams {
	return sqlc.CreateAddressParams{
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		PostalCode:   address.PostalCode,
		City:         address.City,
		Country:      address.Country,
	}
}

// A zero creation time keeps the stored one.
func updateAddressParams(address core.Address) sqlc.UpdateAddressParams {
	return sqlc.UpdateAddressParams{
		ID:           int64(address.ID),
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		PostalCode:   address.PostalCode,
		City:         address.City,
		Country:      address.Country,
		CreationTime: pgtype.Timestamptz{
			Time:  address.CreationTime,
			Valid: !address.CreationTime.IsZero(),
		},
	}
}

func convertAddress(address sqlc.Address) *core.Address {
	return &core.Address{
		ID:           core.AddressID(address.ID),
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		PostalCode:   address.PostalCode,
		City:         address.City,
		Country:      address.Country,
		CreationTime: address.CreationTime.Time,
		UpdateTime:   address.UpdateTime.Time,
	}
}

package tests

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
)

var Faker = gofakeit.New(rand.Uint64())

// NewAddressDTO returns a valid address DTO without an id.
func NewAddressDTO() dto.AddressDTO {
	fakeAddress := Faker.Address()
	return dto.AddressDTO{
		AddressLine1: fakeAddress.Street,
		PostalCode:   fakeAddress.Zip,
		City:         fakeAddress.City,
		Country:      Faker.CountryAbr(),
	}
}

// NewCustomerDTO returns a valid customer DTO without ids.
func NewCustomerDTO() dto.CustomerDTO {
	age := Faker.Number(18, 99)
	address := NewAddressDTO()
	return dto.CustomerDTO{
		FirstName: Faker.FirstName(),
		LastName:  Faker.LastName(),
		Age:       &age,
		Address:   &address,
	}
}

// NewCustomer returns a customer entity as a store would return it: with ids and timestamps.
func NewCustomer() core.Customer {
	fakeAddress := Faker.Address()
	now := time.Now().UTC().Truncate(time.Microsecond)
	return core.Customer{
		ID:        core.CustomerID(Faker.Number(1, 1_000_000)),
		FirstName: Faker.FirstName(),
		LastName:  Faker.LastName(),
		Age:       Faker.Number(18, 99),
		Address: core.Address{
			ID:           core.AddressID(Faker.Number(1, 1_000_000)),
			AddressLine1: fakeAddress.Street,
			PostalCode:   fakeAddress.Zip,
			City:         fakeAddress.City,
			Country:      Faker.CountryAbr(),
			CreationTime: now,
			UpdateTime:   now,
		},
		CreationTime: now,
		UpdateTime:   now,
	}
}

// Package memory provides an in-memory implementation of the core repositories. Customers and
// addresses live in two separate maps linked by the address id, mirroring the database tables.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/prior-it/customers/core"
)

type customerRow struct {
	id           core.CustomerID
	firstName    string
	lastName     string
	age          int
	addressID    core.AddressID
	creationTime time.Time
	updateTime   time.Time
}

// Store keeps customers and addresses in memory. It is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	customers    map[core.CustomerID]customerRow
	addresses    map[core.AddressID]core.Address
	lastCustomer core.CustomerID
	lastAddress  core.AddressID
	now          func() time.Time
}

// Force struct to implement the core interfaces
var (
	_ core.CustomerRepository = &Store{}
	_ core.AddressRepository  = &Store{}
)

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		customers: make(map[core.CustomerID]customerRow),
		addresses: make(map[core.AddressID]core.Address),
		now:       time.Now,
	}
}

// FindByID implements core.CustomerRepository.FindByID
func (s *Store) FindByID(_ context.Context, id core.CustomerID) (*core.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %v: %w", id, core.ErrNotFound)
	}
	customer := s.join(row)
	return &customer, nil
}

// Save implements core.CustomerRepository.Save
func (s *Store) Save(_ context.Context, customer core.Customer) (*core.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	row, exists := s.customers[customer.ID]
	if !exists {
		s.lastCustomer++
		s.lastAddress++
		row = customerRow{
			id:           s.lastCustomer,
			addressID:    s.lastAddress,
			creationTime: now,
		}
		address := cloneAddress(customer.Address)
		address.ID = row.addressID
		address.CreationTime = now
		address.UpdateTime = now
		s.addresses[row.addressID] = address
	} else {
		address := cloneAddress(customer.Address)
		address.ID = row.addressID
		address.CreationTime = s.addresses[row.addressID].CreationTime
		address.UpdateTime = now
		s.addresses[row.addressID] = address
	}
	row.firstName = customer.FirstName
	row.lastName = customer.LastName
	row.age = customer.Age
	row.updateTime = now
	s.customers[row.id] = row

	saved := s.join(row)
	return &saved, nil
}

// FindAll implements core.CustomerRepository.FindAll
func (s *Store) FindAll(_ context.Context) ([]core.Customer, error) {
	return s.filter(func(customerRow) bool { return true }), nil
}

// FindByFirstNameAndLastName implements core.CustomerRepository.FindByFirstNameAndLastName
func (s *Store) FindByFirstNameAndLastName(
	_ context.Context,
	firstName, lastName string,
) ([]core.Customer, error) {
	return s.filter(func(row customerRow) bool {
		return row.firstName == firstName && row.lastName == lastName
	}), nil
}

// FindByFirstNameOrLastName implements core.CustomerRepository.FindByFirstNameOrLastName
func (s *Store) FindByFirstNameOrLastName(
	_ context.Context,
	firstName, lastName string,
) ([]core.Customer, error) {
	return s.filter(func(row customerRow) bool {
		return row.firstName == firstName || row.lastName == lastName
	}), nil
}

// SaveAddress implements core.AddressRepository.SaveAddress
func (s *Store) SaveAddress(_ context.Context, address core.Address) (*core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	if !address.IsPersisted() {
		s.lastAddress++
		address.ID = s.lastAddress
		address.CreationTime = now
	} else if _, ok := s.addresses[address.ID]; !ok {
		return nil, nil
	}
	address.UpdateTime = now
	s.addresses[address.ID] = cloneAddress(address)
	return &address, nil
}

// filter returns the matching customers ordered by id. Callers must not hold the lock.
func (s *Store) filter(match func(customerRow) bool) []core.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(s.customers))
	list := make([]core.Customer, 0, len(ids))
	for _, id := range ids {
		row := s.customers[id]
		if match(row) {
			list = append(list, s.join(row))
		}
	}
	return list
}

func (s *Store) join(row customerRow) core.Customer {
	address := cloneAddress(s.addresses[row.addressID])
	return core.Customer{
		ID:           row.id,
		FirstName:    row.firstName,
		LastName:     row.lastName,
		Age:          row.age,
		Address:      address,
		CreationTime: row.creationTime,
		UpdateTime:   row.updateTime,
	}
}

func cloneAddress(address core.Address) core.Address {
	if address.AddressLine2 != nil {
		line2 := *address.AddressLine2
		address.AddressLine2 = &line2
	}
	return address
}

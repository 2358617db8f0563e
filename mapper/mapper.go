// Package mapper converts between wire DTOs and domain entities.
// All functions are pure; store-assigned timestamps have no wire representation and are left at
// their zero value when mapping to an entity.
package mapper

import (
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
)

// AddressToEntity maps an address DTO onto a new address entity.
func AddressToEntity(address dto.AddressDTO) core.Address {
	entity := core.Address{
		AddressLine1: address.AddressLine1,
		AddressLine2: copyString(address.AddressLine2),
		PostalCode:   address.PostalCode,
		City:         address.City,
		Country:      address.Country,
	}
	if address.AddressID != nil {
		entity.ID = core.AddressID(*address.AddressID)
	}
	return entity
}

// AddressToDTO maps an address entity onto a new address DTO.
func AddressToDTO(address core.Address) dto.AddressDTO {
	result := dto.AddressDTO{
		AddressLine1: address.AddressLine1,
		AddressLine2: copyString(address.AddressLine2),
		PostalCode:   address.PostalCode,
		City:         address.City,
		Country:      address.Country,
	}
	if address.IsPersisted() {
		id := int64(address.ID)
		result.AddressID = &id
	}
	return result
}

// CustomerToEntity maps a customer DTO, including its address, onto a new customer entity.
// The DTO message is not part of the entity and is dropped.
func CustomerToEntity(customer dto.CustomerDTO) core.Customer {
	entity := core.Customer{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	}
	if customer.ID != nil {
		entity.ID = core.CustomerID(*customer.ID)
	}
	if customer.Age != nil {
		entity.Age = *customer.Age
	}
	if customer.Address != nil {
		entity.Address = AddressToEntity(*customer.Address)
	}
	return entity
}

// CustomerToDTO maps a customer entity, including its address, onto a new customer DTO.
func CustomerToDTO(customer core.Customer) dto.CustomerDTO {
	age := customer.Age
	address := AddressToDTO(customer.Address)
	result := dto.CustomerDTO{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Age:       &age,
		Address:   &address,
	}
	if customer.ID != 0 {
		id := int64(customer.ID)
		result.ID = &id
	}
	return result
}

// CustomersToDTO maps every customer in order.
func CustomersToDTO(customers []core.Customer) []dto.CustomerDTO {
	list := make([]dto.CustomerDTO, len(customers))
	for i, c := range customers {
		list[i] = CustomerToDTO(c)
	}
	return list
}

// CustomersToEntity maps every customer DTO in order.
func CustomersToEntity(customers []dto.CustomerDTO) []core.Customer {
	list := make([]core.Customer, len(customers))
	for i, c := range customers {
		list[i] = CustomerToEntity(c)
	}
	return list
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

package mapper_test

import (
	"testing"
	"time"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
	"github.com/prior-it/customers/mapper"
	"github.com/prior-it/customers/tests"
	"github.com/stretchr/testify/assert"
)

func TestCustomerMapping(t *testing.T) {
	t.Run("ok: dto to entity and back is lossless", func(t *testing.T) {
		customer := tests.NewCustomerDTO()
		id := int64(tests.Faker.Number(1, 10000))
		addressID := int64(tests.Faker.Number(1, 10000))
		line2 := tests.Faker.Street()
		customer.ID = &id
		customer.Address.AddressID = &addressID
		customer.Address.AddressLine2 = &line2

		entity := mapper.CustomerToEntity(customer)
		assert.Equal(t, core.CustomerID(id), entity.ID)
		assert.Equal(t, core.AddressID(addressID), entity.Address.ID)
		assert.Equal(t, *customer.Age, entity.Age)
		assert.Equal(t, customer, mapper.CustomerToDTO(entity))
	})

	t.Run("ok: message is not mapped", func(t *testing.T) {
		customer := tests.NewCustomerDTO()
		customer.Message = "some message"
		result := mapper.CustomerToDTO(mapper.CustomerToEntity(customer))
		assert.Empty(t, result.Message)
	})

	t.Run("ok: unpersisted entity has no ids", func(t *testing.T) {
		entity := mapper.CustomerToEntity(tests.NewCustomerDTO())
		result := mapper.CustomerToDTO(entity)
		assert.Nil(t, result.ID)
		assert.Nil(t, result.Address.AddressID)
	})

	t.Run("ok: timestamps are not exposed", func(t *testing.T) {
		entity := tests.NewCustomer()
		entity.CreationTime = time.Now()
		entity.Address.CreationTime = time.Now()
		back := mapper.CustomerToEntity(mapper.CustomerToDTO(entity))
		assert.True(t, back.CreationTime.IsZero())
		assert.True(t, back.Address.CreationTime.IsZero())
		assert.Equal(t, entity.ID, back.ID)
		assert.Equal(t, entity.Address.ID, back.Address.ID)
	})

	t.Run("ok: optional address line is copied", func(t *testing.T) {
		line2 := "Floor 2"
		address := dto.AddressDTO{AddressLine1: "X", AddressLine2: &line2}
		entity := mapper.AddressToEntity(address)
		line2 = "changed"
		assert.Equal(t, "Floor 2", *entity.AddressLine2)
	})
}

func TestCustomerListMapping(t *testing.T) {
	t.Run("ok: order and length are preserved", func(t *testing.T) {
		customers := []core.Customer{tests.NewCustomer(), tests.NewCustomer(), tests.NewCustomer()}
		customers[0].ID, customers[1].ID, customers[2].ID = 3, 1, 2

		result := mapper.CustomersToDTO(customers)
		assert.Len(t, result, 3)
		for i := range customers {
			assert.Equal(t, int64(customers[i].ID), *result[i].ID)
		}
		assert.Equal(t, customers[0].FirstName, mapper.CustomersToEntity(result)[0].FirstName)
	})

	t.Run("ok: empty list", func(t *testing.T) {
		assert.Empty(t, mapper.CustomersToDTO(nil))
		assert.NotNil(t, mapper.CustomersToDTO(nil))
	})
}

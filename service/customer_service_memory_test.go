package service_test

import (
	"context"
	"testing"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
	"github.com/prior-it/customers/memory"
	"github.com/prior-it/customers/service"
	"github.com/prior-it/customers/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService() *service.CustomerService {
	store := memory.New()
	return service.NewCustomerService(store, store, nil)
}

func TestCustomerServiceWithStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: added customer can be found again", func(t *testing.T) {
		svc := newMemoryService()
		customer := tests.NewCustomerDTO()
		added, err := svc.AddCustomer(ctx, customer)
		require.NoError(t, err)
		require.NotNil(t, added.ID)
		assert.Equal(t, service.MessageCustomerAdded, added.Message)

		found, err := svc.SearchCustomerByID(ctx, core.CustomerID(*added.ID))
		require.NoError(t, err)
		added.Message = ""
		assert.Equal(t, *added, *found)
	})

	t.Run("err: adding a stored id twice", func(t *testing.T) {
		svc := newMemoryService()
		added, err := svc.AddCustomer(ctx, tests.NewCustomerDTO())
		require.NoError(t, err)

		duplicate := tests.NewCustomerDTO()
		duplicate.ID = added.ID
		_, err = svc.AddCustomer(ctx, duplicate)
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
	})

	t.Run("ok: full name search uses and semantics", func(t *testing.T) {
		svc := newMemoryService()
		first := tests.NewCustomerDTO()
		first.FirstName, first.LastName = "John", "Doe"
		second := tests.NewCustomerDTO()
		second.FirstName, second.LastName = "John", "Smith"
		_, err := svc.AddCustomer(ctx, first)
		require.NoError(t, err)
		_, err = svc.AddCustomer(ctx, second)
		require.NoError(t, err)

		result, err := svc.SearchCustomerByName(ctx, dto.CustomerNameDTO{FirstName: "John", LastName: "Smith"})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Smith", result[0].LastName)

		result, err = svc.SearchCustomerByName(ctx, dto.CustomerNameDTO{FirstName: "John"})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("ok: empty store returns only the sentinel", func(t *testing.T) {
		svc := newMemoryService()
		result, err := svc.GetCustomers(ctx)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Nil(t, result[0].ID)
		assert.Nil(t, result[0].Age)
		assert.Nil(t, result[0].Address)
		assert.Empty(t, result[0].FirstName)
		assert.Empty(t, result[0].LastName)
		assert.Equal(t, service.MessageNoCustomers, result[0].Message)
	})

	t.Run("ok: patched address round trips with unchanged id", func(t *testing.T) {
		svc := newMemoryService()
		added, err := svc.AddCustomer(ctx, tests.NewCustomerDTO())
		require.NoError(t, err)

		newAddress := tests.NewAddressDTO()
		result, err := svc.UpdateCustomer(ctx, dto.CustomerPatchDTO{CustomerID: added.ID, Address: &newAddress})
		require.NoError(t, err)
		assert.True(t, result.Updated)

		found, err := svc.SearchCustomerByID(ctx, core.CustomerID(*added.ID))
		require.NoError(t, err)
		assert.Equal(t, *added.Address.AddressID, *found.Address.AddressID)
		assert.Equal(t, newAddress.AddressLine1, found.Address.AddressLine1)
		assert.Equal(t, newAddress.City, found.Address.City)
		assert.Equal(t, newAddress.Country, found.Address.Country)
		assert.Equal(t, added.FirstName, found.FirstName)
	})
}

package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() dto.CustomerDTO {
	age := 30
	return dto.CustomerDTO{
		FirstName: "A",
		LastName:  "B",
		Age:       &age,
		Address: &dto.AddressDTO{
			AddressLine1: "X",
			PostalCode:   "1",
			City:         "C",
			Country:      "NL",
		},
	}
}

func detailOf(t *testing.T, err error) string {
	t.Helper()
	var failure *core.Error
	require.True(t, errors.As(err, &failure), "validation should return a core.Error")
	assert.Equal(t, dto.MessageInvalidInput, failure.Message)
	return failure.Detail
}

func TestValidateCustomer(t *testing.T) {
	t.Run("ok: valid customer", func(t *testing.T) {
		customer := validCustomer()
		assert.NoError(t, dto.Validate(customer))
	})

	t.Run("ok: optional fields may be absent", func(t *testing.T) {
		customer := validCustomer()
		customer.Address.AddressLine2 = nil
		customer.ID = nil
		assert.NoError(t, dto.Validate(&customer))
	})

	t.Run("ok: age zero is a value", func(t *testing.T) {
		customer := validCustomer()
		zero := 0
		customer.Age = &zero
		assert.NoError(t, dto.Validate(customer))
	})

	t.Run("err: age does not fit the store", func(t *testing.T) {
		customer := validCustomer()
		tooOld := 4294967326
		customer.Age = &tooOld
		err := dto.Validate(customer)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "age is out of range", detailOf(t, err))
	})

	t.Run("err: negative age", func(t *testing.T) {
		customer := validCustomer()
		negative := -1
		customer.Age = &negative
		assert.Equal(t, "age is out of range", detailOf(t, dto.Validate(customer)))
	})

	t.Run("err: blank first name", func(t *testing.T) {
		customer := validCustomer()
		customer.FirstName = "   "
		err := dto.Validate(customer)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "firstName must not be blank", detailOf(t, err))
	})

	t.Run("err: missing age", func(t *testing.T) {
		customer := validCustomer()
		customer.Age = nil
		err := dto.Validate(customer)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "age is required", detailOf(t, err))
	})

	t.Run("err: missing address", func(t *testing.T) {
		customer := validCustomer()
		customer.Address = nil
		err := dto.Validate(customer)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "address is required", detailOf(t, err))
	})

	t.Run("err: nested address fields are validated", func(t *testing.T) {
		customer := validCustomer()
		customer.Address.City = ""
		err := dto.Validate(customer)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "address.city must not be blank", detailOf(t, err))
	})
}

func TestValidatePatch(t *testing.T) {
	id := int64(1)

	t.Run("ok: valid patch", func(t *testing.T) {
		patch := dto.CustomerPatchDTO{
			CustomerID: &id,
			Address:    validCustomer().Address,
		}
		assert.NoError(t, dto.Validate(patch))
	})

	t.Run("err: missing customer id", func(t *testing.T) {
		patch := dto.CustomerPatchDTO{Address: validCustomer().Address}
		err := dto.Validate(patch)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "customerId is required", detailOf(t, err))
	})

	t.Run("err: blank address line", func(t *testing.T) {
		address := validCustomer().Address
		address.AddressLine1 = ""
		err := dto.Validate(dto.CustomerPatchDTO{CustomerID: &id, Address: address})
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, "address.addressLine1 must not be blank", detailOf(t, err))
	})
}

func TestCustomerNameDTO(t *testing.T) {
	query := dto.CustomerNameDTO{FirstName: "a", LastName: " "}
	assert.True(t, query.HasFirstName())
	assert.False(t, query.HasLastName())
}

func TestCustomerDTOEncoding(t *testing.T) {
	t.Run("ok: empty fields are omitted", func(t *testing.T) {
		data, err := json.Marshal(dto.CustomerDTO{Message: "hello"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"hello"}`, string(data))
	})

	t.Run("ok: unknown fields are ignored", func(t *testing.T) {
		var customer dto.CustomerDTO
		err := json.Unmarshal([]byte(`{"firstName":"A","favouriteColour":"blue"}`), &customer)
		require.NoError(t, err)
		assert.Equal(t, "A", customer.FirstName)
	})
}

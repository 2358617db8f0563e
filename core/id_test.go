package core_test

import (
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prior-it/customers/core"
	"github.com/stretchr/testify/assert"
)

func FuzzParseCustomerID(f *testing.F) {
	for _, seed := range []string{"0", "1", "-1", "999", "abc", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		id, err := core.ParseCustomerID(input)
		if err != nil {
			t.Skip()
		}
		if id < 0 {
			t.Errorf("Parsed a negative customer id from %q", input)
		}
	})
}

func TestParseCustomerID(t *testing.T) {
	t.Run("ok: valid id", func(t *testing.T) {
		value := gofakeit.Int64()
		if value < 0 {
			value = -value
		}
		id, err := core.ParseCustomerID(strconv.FormatInt(value, 10))
		assert.NoError(t, err)
		assert.Equal(t, core.CustomerID(value), id)
		assert.Equal(t, strconv.FormatInt(value, 10), id.String())
	})

	t.Run("err: negative id", func(t *testing.T) {
		_, err := core.ParseCustomerID("-5")
		assert.Error(t, err)
	})

	t.Run("err: not a number", func(t *testing.T) {
		_, err := core.ParseCustomerID("abc")
		assert.Error(t, err)
	})

	t.Run("ok: unmarshal text", func(t *testing.T) {
		var id core.CustomerID
		assert.NoError(t, id.UnmarshalText([]byte("42")))
		assert.Equal(t, core.CustomerID(42), id)
	})
}

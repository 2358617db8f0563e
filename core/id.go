package core

import (
	"errors"
	"fmt"
	"strconv"
)

type (
	CustomerID int64
	AddressID  int64
)

func (id CustomerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id AddressID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *CustomerID) UnmarshalText(text []byte) error {
	val, err := ParseCustomerID(string(text))
	if err != nil {
		return err
	}
	*id = val
	return nil
}

// ParseCustomerID parses a string into a customer id.
func ParseCustomerID(id string) (CustomerID, error) {
	integerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse customer id: %w", err)
	}
	if integerID < 0 {
		return 0, errors.New("cannot parse customer id: customer ids cannot be negative")
	}
	return CustomerID(integerID), nil
}

package core

import (
	"time"
)

/**
 * DOMAIN
 */

// Address is owned by exactly one customer. It is created together with its customer and only
// ever updated in place afterwards.
type Address struct {
	ID           AddressID
	AddressLine1 string
	AddressLine2 *string
	PostalCode   string
	City         string
	Country      string
	CreationTime time.Time
	UpdateTime   time.Time
}

// IsPersisted returns whether the address has been assigned an id by a store.
func (a Address) IsPersisted() bool {
	return a.ID != 0
}

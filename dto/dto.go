// Package dto contains the wire representations exchanged over HTTP.
// Unknown fields are ignored when decoding and empty fields are omitted when encoding.
package dto

import "strings"

type AddressDTO struct {
	AddressID    *int64  `json:"addressId,omitempty"`
	AddressLine1 string  `json:"addressLine1,omitempty" validate:"notblank"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"   validate:"notblank"`
	City         string  `json:"city,omitempty"         validate:"notblank"`
	Country      string  `json:"country,omitempty"      validate:"notblank"`
}

type CustomerDTO struct {
	ID        *int64      `json:"id,omitempty"`
	FirstName string      `json:"firstName,omitempty" validate:"notblank"`
	LastName  string      `json:"lastName,omitempty"  validate:"notblank"`
	Age       *int        `json:"age,omitempty"       validate:"required,gte=0,lte=2147483647"` // stored as int32
	Address   *AddressDTO `json:"address,omitempty"   validate:"required"`
	// Message is a human-readable status, only set on responses.
	Message string `json:"message,omitempty"`
}

// CustomerNameDTO is a search query on customer names. At least one of the names must be non-blank,
// which is a business rule enforced by the service rather than a validation rule.
type CustomerNameDTO struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// HasFirstName returns whether the first name is non-blank.
func (q CustomerNameDTO) HasFirstName() bool {
	return !isBlank(q.FirstName)
}

// HasLastName returns whether the last name is non-blank.
func (q CustomerNameDTO) HasLastName() bool {
	return !isBlank(q.LastName)
}

// CustomerPatchDTO replaces the address of an existing customer.
type CustomerPatchDTO struct {
	CustomerID *int64      `json:"customerId,omitempty" validate:"required"`
	Address    *AddressDTO `json:"address,omitempty"    validate:"required"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

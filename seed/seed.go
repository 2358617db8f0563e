// Package seed loads the sample customers into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prior-it/customers/core"
)

// Customers returns the sample data set.
func Customers() []core.Customer {
	return []core.Customer{
		{
			FirstName: "userFirstName1",
			LastName:  "userLastName1",
			Age:       23,
			Address: core.Address{
				AddressLine1: "addressline1",
				AddressLine2: ptr("addressline2"),
				PostalCode:   "8888JK",
				City:         "Amsterdam",
				Country:      "NL",
			},
		},
		{
			FirstName: "userFirstName2",
			LastName:  "userLastName2",
			Age:       31,
			Address: core.Address{
				AddressLine1: "addressline3",
				AddressLine2: ptr("addressline4"),
				PostalCode:   "6565SD",
				City:         "Utrecht",
				Country:      "NL",
			},
		},
	}
}

// Load saves the sample customers if the store does not contain any customers yet.
// It returns the number of customers that were added.
func Load(ctx context.Context, customers core.CustomerRepository) (int, error) {
	existing, err := customers.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot check for existing customers: %w", err)
	}
	if len(existing) > 0 {
		slog.Debug("Store already contains customers, skipping seed", "count", len(existing))
		return 0, nil
	}

	added := 0
	for _, customer := range Customers() {
		saved, err := customers.Save(ctx, customer)
		if err != nil {
			return added, fmt.Errorf("cannot seed customer %s %s: %w", customer.FirstName, customer.LastName, err)
		}
		slog.Info("Seeded customer", "customer_id", saved.ID)
		added++
	}
	return added, nil
}

func ptr(s string) *string {
	return &s
}

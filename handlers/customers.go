// Package handlers contains the HTTP endpoints of the customer API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
	"github.com/prior-it/customers/server"
	"github.com/prior-it/customers/state"
)

// Register attaches all customer endpoints to the server.
func Register(s *server.Server[*state.State]) {
	s.Post("/customers", AddCustomer).
		Get("/customers", GetCustomers).
		Get("/customers/{id}", GetCustomer).
		Patch("/updateAddress", UpdateAddress).
		Post("/searchByName", SearchByName)
}

// AddCustomer handles POST /customers.
func AddCustomer(ex *server.Exchange, st *state.State) error {
	var customer dto.CustomerDTO
	if err := ex.ParseBody(&customer); err != nil {
		return err
	}
	if err := dto.Validate(customer); err != nil {
		return err
	}

	added, err := st.Customers.AddCustomer(ex.Context(), customer)
	if err != nil {
		return err
	}
	ex.LogField("customer_id", slog.Int64Value(*added.ID))
	st.Metrics.IncrementCustomersAdded()
	ex.RenderJSON(added)
	return nil
}

// UpdateAddress handles PATCH /updateAddress. An update the store did not confirm is still
// answered with 200, the message tells both outcomes apart.
func UpdateAddress(ex *server.Exchange, st *state.State) error {
	var patch dto.CustomerPatchDTO
	if err := ex.ParseBody(&patch); err != nil {
		return err
	}
	if err := dto.Validate(patch); err != nil {
		return err
	}
	ex.LogField("customer_id", slog.Int64Value(*patch.CustomerID))

	result, err := st.Customers.UpdateCustomer(ex.Context(), patch)
	if err != nil {
		return err
	}
	st.Metrics.ObserveAddressUpdate(result.Updated)
	ex.RenderText(result.Message())
	return nil
}

// GetCustomer handles GET /customers/{id}.
func GetCustomer(ex *server.Exchange, st *state.State) error {
	id, err := core.ParseCustomerID(ex.GetPath("id"))
	if err != nil {
		return core.NewError(core.ErrValidation, dto.MessageInvalidInput).WithDetail(err.Error())
	}
	ex.LogField("customer_id", slog.Int64Value(int64(id)))

	customer, err := st.Customers.SearchCustomerByID(ex.Context(), id)
	if err != nil {
		return err
	}
	ex.RenderJSON(customer)
	return nil
}

// SearchByName handles POST /searchByName.
func SearchByName(ex *server.Exchange, st *state.State) error {
	var query dto.CustomerNameDTO
	if err := ex.ParseBody(&query); err != nil {
		return err
	}

	customers, err := st.Customers.SearchCustomerByName(ex.Context(), query)
	if err != nil {
		return err
	}
	ex.RenderJSON(customers)
	return nil
}

// GetCustomers handles GET /customers.
func GetCustomers(ex *server.Exchange, st *state.State) error {
	customers, err := st.Customers.GetCustomers(ex.Context())
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		customers = []dto.CustomerDTO{}
	}
	ex.RenderJSON(customers)
	return nil
}

// Ping handles GET /ping.
func Ping(ex *server.Exchange, st *state.State) error {
	if err := st.Ping(ex.Context()); err != nil {
		ex.Error("Store is not reachable", "error", err)
		ex.RenderTextStatus(http.StatusServiceUnavailable, "unavailable")
		return nil
	}
	ex.RenderText("pong")
	return nil
}

// RegisterOperational attaches the liveness and metrics endpoints.
func RegisterOperational(s *server.Server[*state.State], st *state.State) {
	s.Get("/ping", Ping).
		Handle("/metrics", st.Metrics.Handler())
}

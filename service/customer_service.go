package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
	"github.com/prior-it/customers/mapper"
)

const (
	MessageCustomerAdded = "Customer added successfully!!!"
	MessageNoCustomers   = "No customers found, please add customers"
	MessageInvalidName   = "Invalid input, please try with valid data!!!"
)

// CustomerService implements the customer use cases on top of the storage port.
// Each operation performs at most one read and one write on the store.
type CustomerService struct {
	customers core.CustomerRepository
	addresses core.AddressRepository
	logger    *slog.Logger
}

func NewCustomerService(
	customers core.CustomerRepository,
	addresses core.AddressRepository,
	logger *slog.Logger,
) *CustomerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerService{
		customers: customers,
		addresses: addresses,
		logger:    logger,
	}
}

// AddCustomer stores a new customer together with its address.
// If the DTO carries the id of an existing customer this returns core.ErrAlreadyExists.
func (s *CustomerService) AddCustomer(ctx context.Context, customer dto.CustomerDTO) (*dto.CustomerDTO, error) {
	if customer.ID != nil {
		id := core.CustomerID(*customer.ID)
		_, err := s.customers.FindByID(ctx, id)
		switch {
		case err == nil:
			s.logger.Info("Rejected customer with existing id", "customer_id", id)
			return nil, core.NewError(core.ErrAlreadyExists, "Customer with this id already exists!!!")
		case !errors.Is(err, core.ErrNotFound):
			return nil, fmt.Errorf("cannot look up customer %v: %w", id, err)
		}
	}

	saved, err := s.customers.Save(ctx, mapper.CustomerToEntity(customer))
	if err != nil {
		return nil, fmt.Errorf("cannot save customer: %w", err)
	}
	added := mapper.CustomerToDTO(*saved)
	added.Message = MessageCustomerAdded
	return &added, nil
}

// SearchCustomerByID returns the customer with the specified id or core.ErrNotFound.
func (s *CustomerService) SearchCustomerByID(ctx context.Context, id core.CustomerID) (*dto.CustomerDTO, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, noCustomerWithID(id)
	} else if err != nil {
		return nil, fmt.Errorf("cannot look up customer %v: %w", id, err)
	}
	result := mapper.CustomerToDTO(*customer)
	return &result, nil
}

// SearchCustomerByName returns the customers matching both names if both are given, or either
// name otherwise. Returns core.ErrInvalidRequest if both names are blank and core.ErrNotFound if
// nothing matches.
func (s *CustomerService) SearchCustomerByName(
	ctx context.Context,
	query dto.CustomerNameDTO,
) ([]dto.CustomerDTO, error) {
	if !query.HasFirstName() && !query.HasLastName() {
		s.logger.Warn("Invalid customer name query", "query", query)
		return nil, core.NewError(core.ErrInvalidRequest, MessageInvalidName)
	}

	var (
		customers []core.Customer
		err       error
		notFound  *core.Error
	)
	if query.HasFirstName() && query.HasLastName() {
		customers, err = s.customers.FindByFirstNameAndLastName(ctx, query.FirstName, query.LastName)
		notFound = core.NewError(core.ErrNotFound,
			"No Customer present with first name %s and last name %s", query.FirstName, query.LastName)
	} else {
		customers, err = s.customers.FindByFirstNameOrLastName(ctx, query.FirstName, query.LastName)
		notFound = core.NewError(core.ErrNotFound,
			"No Customer present with first name %s or last name %s", query.FirstName, query.LastName)
	}
	if errors.Is(err, core.ErrNotFound) || (err == nil && len(customers) == 0) {
		return nil, notFound
	} else if err != nil {
		return nil, fmt.Errorf("cannot search customers by name: %w", err)
	}
	return mapper.CustomersToDTO(customers), nil
}

// GetCustomers returns all customers. An empty store results in a list with a single sentinel
// element that only carries MessageNoCustomers, see IsSentinel.
func (s *CustomerService) GetCustomers(ctx context.Context) ([]dto.CustomerDTO, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list customers: %w", err)
	}
	if len(customers) == 0 {
		return []dto.CustomerDTO{{Message: MessageNoCustomers}}, nil
	}
	return mapper.CustomersToDTO(customers), nil
}

// IsSentinel returns whether the list is the placeholder returned by GetCustomers for an empty store.
func IsSentinel(customers []dto.CustomerDTO) bool {
	return len(customers) == 1 && customers[0] == dto.CustomerDTO{Message: MessageNoCustomers}
}

// UpdateResult is the outcome of an address update that reached the store.
type UpdateResult struct {
	CustomerID core.CustomerID
	// Updated is false if the store did not confirm the save.
	Updated bool
}

// Message returns the human-readable outcome of the update.
func (r UpdateResult) Message() string {
	if r.Updated {
		return fmt.Sprintf("Customer details updated successfully with id %v", r.CustomerID)
	}
	return fmt.Sprintf("Customer details update failed for the id %v", r.CustomerID)
}

// UpdateCustomer replaces the address of an existing customer. The address keeps its id and creation
// time, so the existing row is overwritten. Returns core.ErrNotFound if the customer does not exist.
// The patch is expected to have passed dto.Validate; a patch without id or address is rejected with
// core.ErrValidation as a precondition guard.
func (s *CustomerService) UpdateCustomer(ctx context.Context, patch dto.CustomerPatchDTO) (UpdateResult, error) {
	if patch.CustomerID == nil || patch.Address == nil {
		return UpdateResult{}, core.NewError(core.ErrValidation, dto.MessageInvalidInput)
	}
	id := core.CustomerID(*patch.CustomerID)
	existing, err := s.customers.FindByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return UpdateResult{}, noCustomerWithID(id)
	} else if err != nil {
		return UpdateResult{}, fmt.Errorf("cannot look up customer %v: %w", id, err)
	}

	address := mapper.AddressToEntity(*patch.Address)
	address.ID = existing.Address.ID
	address.CreationTime = existing.Address.CreationTime
	saved, err := s.addresses.SaveAddress(ctx, address)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("cannot save address of customer %v: %w", id, err)
	}

	result := UpdateResult{CustomerID: id, Updated: saved != nil}
	if !result.Updated {
		s.logger.Warn("Address update was not confirmed by the store",
			"customer_id", id, "address_id", address.ID)
	}
	return result, nil
}

func noCustomerWithID(id core.CustomerID) *core.Error {
	return core.NewError(core.ErrNotFound, "No Customer present with Id %v", id)
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/proroofers/crm-api/internal/constants"
	"github.com/proroofers/crm-api/internal/dto"
	"github.com/proroofers/crm-api/internal/models"
	"github.com/proroofers/crm-api/internal/repository"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrIDMismatch       = errors.New("body id does not match path id")
	ErrConflict         = errors.New("record was modified concurrently")
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Search returns up to the configured limit of customers matching the term
func (s *CustomerService) Search(term string) ([]models.Customer, error) {
	customers, err := s.customerRepo.Search(term, constants.CustomerSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

// Get returns a customer with its projects
func (s *CustomerService) Get(id uint64) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(id, "Projects")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

// Create persists a new customer. CreatedAt is server-assigned; any
// client-supplied value is ignored.
func (s *CustomerService) Create(input dto.CustomerRequest) (*models.Customer, error) {
	customer := customerFromRequest(input)
	customer.ID = 0
	customer.CreatedAt = time.Now().UTC()

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// Update replaces every allow-listed field from the submitted values.
// CreatedAt is always carried over from the existing row.
func (s *CustomerService) Update(pathID uint64, input dto.CustomerRequest) error {
	if input.ID != pathID {
		return ErrIDMismatch
	}

	existing, err := s.customerRepo.FindByID(pathID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to find customer: %w", err)
	}

	customer := customerFromRequest(input)
	customer.ID = pathID
	customer.CreatedAt = existing.CreatedAt

	if err := s.customerRepo.Update(customer, existing.Version); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrCustomerNotFound
		case errors.Is(err, repository.ErrConflict):
			return ErrConflict
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// Delete removes the customer and its projects; referencing tasks survive
// with nulled customer/project links.
func (s *CustomerService) Delete(id uint64) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to find customer: %w", err)
	}

	if err := s.customerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func customerFromRequest(input dto.CustomerRequest) *models.Customer {
	return &models.Customer{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		BillingStreet:   input.BillingStreet,
		BillingCity:     input.BillingCity,
		BillingState:    input.BillingState,
		BillingZipCode:  input.BillingZipCode,
		PropertyStreet:  input.PropertyStreet,
		PropertyCity:    input.PropertyCity,
		PropertyState:   input.PropertyState,
		PropertyZipCode: input.PropertyZipCode,
	}
}

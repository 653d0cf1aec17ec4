package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
	"github.com/tuanvumaihuynh/brewery/pkg/optional"
)

// CustomerDTO is the external representation of a customer.
type CustomerDTO struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName" validate:"required,notblank"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// CustomerPatch carries the fields of a partial update. Unset or blank
// fields leave the stored value untouched.
type CustomerPatch struct {
	CustomerName optional.Value[string] `json:"customerName"`
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]CustomerDTO, error)
	GetCustomerByID(ctx context.Context, id string) (CustomerDTO, error)
	CreateCustomer(ctx context.Context, dto CustomerDTO) (CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id string, dto CustomerDTO) (CustomerDTO, error)
	PatchCustomer(ctx context.Context, id string, patch CustomerPatch) (CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	opts options
	repo repository.Repository[model.Customer]
}

func NewCustomerService(repo repository.Repository[model.Customer], opts ...Option) CustomerService {
	return &customerService{
		opts: newOptions(opts),
		repo: repo,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]CustomerDTO, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer repository find all: %w", err)
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, customerToDTO(c))
	}
	return dtos, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id string) (CustomerDTO, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return CustomerDTO{}, err
	}
	return customerToDTO(customer), nil
}

func (s *customerService) CreateCustomer(ctx context.Context, dto CustomerDTO) (CustomerDTO, error) {
	if err := s.opts.validate(dto); err != nil {
		return CustomerDTO{}, fmt.Errorf("validate customer: %w", err)
	}

	created, lastModified := s.opts.creationDates(dto.CreatedDate, dto.LastModifiedDate)
	customer := model.Customer{
		CustomerName:     dto.CustomerName,
		CreatedDate:      created,
		LastModifiedDate: lastModified,
	}

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return CustomerDTO{}, fmt.Errorf("customer repository save: %w", err)
	}
	return customerToDTO(saved), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, dto CustomerDTO) (CustomerDTO, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return CustomerDTO{}, err
	}

	if err := s.opts.validate(dto); err != nil {
		return CustomerDTO{}, fmt.Errorf("validate customer: %w", err)
	}

	customer.CustomerName = dto.CustomerName
	customer.LastModifiedDate = s.opts.touch(customer.CreatedDate)

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return CustomerDTO{}, fmt.Errorf("customer repository save: %w", err)
	}
	return customerToDTO(saved), nil
}

func (s *customerService) PatchCustomer(ctx context.Context, id string, patch CustomerPatch) (CustomerDTO, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return CustomerDTO{}, err
	}

	if name, ok := patch.CustomerName.Get(); hasText(name, ok) {
		customer.CustomerName = name
	}
	customer.LastModifiedDate = s.opts.touch(customer.CreatedDate)

	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return CustomerDTO{}, fmt.Errorf("customer repository save: %w", err)
	}
	return customerToDTO(saved), nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.findCustomer(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("customer repository delete: %w", err)
	}
	return nil
}

func (s *customerService) findCustomer(ctx context.Context, id string) (model.Customer, error) {
	if err := requireID(id); err != nil {
		return model.Customer{}, err
	}

	customer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Customer{}, apperr.CustomerNotFoundErr.WithMsg(fmt.Sprintf("customer %s not found", id))
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("customer repository find by id: %w", err)
	}
	return customer, nil
}

func customerToDTO(c model.Customer) CustomerDTO {
	return CustomerDTO{
		ID:               c.ID,
		CustomerName:     c.CustomerName,
		CreatedDate:      c.CreatedDate,
		LastModifiedDate: c.LastModifiedDate,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/pos/internal/pkg/apperr"
)

var (
	ErrRequiredField    = apperr.New(apperr.Validation, "required field is empty")
	ErrDuplicateEmail   = apperr.New(apperr.Integrity, "email already registered")
	ErrCustomerNotFound = apperr.New(apperr.Integrity, "customer not found")
)

type ICustomerService interface {
	CreateCustomer(ctx context.Context, nome, email, localidade string) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	RecentCustomers(ctx context.Context, limit int) ([]model.Customer, error)
}

type CustomerService struct {
	customerRepo db.ICustomerRepository
}

func NewCustomerService(customerRepo db.ICustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer 登錄新客戶
// localidade 為選填，格式 "Cidade - UF"
// email 重複由唯一鍵擋下，轉為 ErrDuplicateEmail
func (s *CustomerService) CreateCustomer(ctx context.Context, nome, email, localidade string) (*model.Customer, error) {
	nome = strings.TrimSpace(nome)
	email = strings.TrimSpace(email)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrRequiredField)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrRequiredField)
	}

	customer := &model.Customer{
		Nome:  nome,
		Email: email,
	}
	if localidade = strings.TrimSpace(localidade); localidade != "" {
		customer.Localidade = &localidade
	}

	created, err := s.customerRepo.CreateCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
		return nil, err
	}
	return created, nil
}

func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, email)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *CustomerService) RecentCustomers(ctx context.Context, limit int) ([]model.Customer, error) {
	return s.customerRepo.ListRecentCustomers(ctx, limit)
}

var _ ICustomerService = (*CustomerService)(nil)

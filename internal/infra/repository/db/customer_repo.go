package db

import (
	"context"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
)

type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListRecentCustomers(ctx context.Context, limit int) ([]model.Customer, error)
}

type CustomerRepo struct {
	dbDao *DbDao
}

func NewCustomerRepo(dbDao *DbDao) *CustomerRepo {
	return &CustomerRepo{dbDao: dbDao}
}

// Create - 創建客戶
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := s.dbDao.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Read - 根據ID查詢客戶
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 根據Email查詢客戶
func (s *CustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 查詢所有客戶，依名稱排序供下拉選單使用
func (s *CustomerRepo) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.dbDao.WithContext(ctx).Order("nome").Find(&customers).Error
	return customers, err
}

// Read - 最近建立的客戶
func (s *CustomerRepo) ListRecentCustomers(ctx context.Context, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.dbDao.WithContext(ctx).Order("id DESC").Limit(limit).Find(&customers).Error
	return customers, err
}

var _ ICustomerRepository = (*CustomerRepo)(nil)

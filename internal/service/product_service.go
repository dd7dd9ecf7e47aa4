package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/pos/internal/pkg/apperr"
)

var (
	ErrInvalidPrice    = apperr.New(apperr.Validation, "price must be greater than zero")
	ErrProductNotFound = apperr.New(apperr.Integrity, "product not found")
)

type IProductService interface {
	CreateProduct(ctx context.Context, nome string, preco decimal.Decimal) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	RecentProducts(ctx context.Context, limit int) ([]model.Product, error)
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct 登錄新商品
// 價格必須為正，這是登錄時的檢核，資料庫本身不擋
func (s *ProductService) CreateProduct(ctx context.Context, nome string, preco decimal.Decimal) (*model.Product, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrRequiredField)
	}
	if !preco.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, preco)
	}

	return s.productRepo.CreateProduct(ctx, &model.Product{
		Nome:  nome,
		Preco: preco,
	})
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

func (s *ProductService) RecentProducts(ctx context.Context, limit int) ([]model.Product, error) {
	return s.productRepo.ListRecentProducts(ctx, limit)
}

var _ IProductService = (*ProductService)(nil)

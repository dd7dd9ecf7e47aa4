package db

import (
	"context"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListRecentProducts(ctx context.Context, limit int) ([]model.Product, error)
}

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.dbDao.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品，依名稱排序供下拉選單使用
func (s *ProductRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).Order("nome").Find(&products).Error
	return products, err
}

// Read - 最近建立的商品
func (s *ProductRepo) ListRecentProducts(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).Order("id DESC").Limit(limit).Find(&products).Error
	return products, err
}

var _ IProductRepository = (*ProductRepo)(nil)

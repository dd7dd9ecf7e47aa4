package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByCustomerID(ctx context.Context, clienteID uint) ([]model.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error)
}

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

// Create - 創建訂單
// 表頭與全部項目在同一個事務內寫入
// 任一項目失敗則整張訂單回滾，不允許殘缺訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Itens").Create(order).Error; err != nil {
			return err
		}
		for i := range order.Itens {
			order.Itens[i].PedidoID = order.ID
		}
		if len(order.Itens) > 0 {
			if err := tx.Create(&order.Itens).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Read - 根據ID查詢訂單含項目
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.WithContext(ctx).Preload("Itens").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據客戶ID查詢訂單
func (s *OrderRepo) GetOrdersByCustomerID(ctx context.Context, clienteID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).Preload("Itens").
		Where("cliente_id = ?", clienteID).
		Find(&orders).Error
	return orders, err
}

// Read - 最近的訂單含客戶名稱，供資料檢視面板使用
func (s *OrderRepo) ListRecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	var orders []model.RecentOrder
	err := s.dbDao.WithContext(ctx).
		Table("pedidos p").
		Select("p.id AS id, c.nome AS cliente, p.data AS data").
		Joins("JOIN clientes c ON p.cliente_id = c.id").
		Order("p.created_at DESC").
		Limit(limit).
		Scan(&orders).Error
	return orders, err
}

var _ IOrderRepository = (*OrderRepo)(nil)

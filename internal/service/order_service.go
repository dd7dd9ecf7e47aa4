package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/pos/internal/pkg/apperr"
)

var (
	ErrEmptyCart     = apperr.New(apperr.Validation, "cart has no items")
	ErrOrderNotFound = apperr.New(apperr.Integrity, "order not found")
)

type IOrderService interface {
	CreateOrder(ctx context.Context, clienteID uint, data time.Time, lines []model.OrderLine) (*model.Order, error)
	Checkout(ctx context.Context, cart *model.Cart, clienteID uint, data time.Time) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	Receipt(ctx context.Context, id string) (*model.ReceiptData, error)
	RecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error)
}

type OrderService struct {
	orderRepo    db.IOrderRepository
	customerRepo db.ICustomerRepository
	productRepo  db.IProductRepository
}

func NewOrderService(orderRepo db.IOrderRepository, customerRepo db.ICustomerRepository, productRepo db.IProductRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateOrder 登錄一筆銷售
// 表頭加全部項目為一個單位，任一項目失敗整張回滾
// 每個項目於此時快照商品現價
func (s *OrderService) CreateOrder(ctx context.Context, clienteID uint, data time.Time, lines []model.OrderLine) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if _, err := s.customerRepo.GetCustomerByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCustomerNotFound, clienteID)
		}
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantidade < 1 {
			return nil, fmt.Errorf("%w: produto %d", model.ErrInvalidQuantity, line.ProdutoID)
		}
		product, err := s.productRepo.GetProductByID(ctx, line.ProdutoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrProductNotFound, line.ProdutoID)
			}
			return nil, err
		}
		items = append(items, model.OrderItem{
			ProdutoID:     product.ID,
			Quantidade:    line.Quantidade,
			PrecoUnitario: decimal.NewNullDecimal(product.Preco),
		})
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		ClienteID: clienteID,
		Data:      db.DateOnly(data),
		Itens:     items,
	}
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Checkout 將購物車轉為一筆 CreateOrder
// 只有成功才清空購物車，失敗時內容保留供重試
func (s *OrderService) Checkout(ctx context.Context, cart *model.Cart, clienteID uint, data time.Time) (*model.Order, error) {
	if cart == nil || cart.State() == model.CartEmpty {
		return nil, ErrEmptyCart
	}

	order, err := s.CreateOrder(ctx, clienteID, data, cart.Lines())
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

// Receipt 組裝收據資料，渲染交給外部的 PDF 產生器
func (s *OrderService) Receipt(ctx context.Context, id string) (*model.ReceiptData, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetCustomerByID(ctx, order.ClienteID)
	if err != nil {
		return nil, err
	}

	receipt := &model.ReceiptData{
		OrderID: order.ID,
		Cliente: customer.Nome,
		Data:    order.Data,
		Total:   decimal.NewFromInt(0),
	}
	for _, item := range order.Itens {
		product, err := s.productRepo.GetProductByID(ctx, item.ProdutoID)
		if err != nil {
			return nil, err
		}
		price := product.Preco
		if item.PrecoUnitario.Valid {
			price = item.PrecoUnitario.Decimal
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		receipt.Lines = append(receipt.Lines, model.ReceiptLine{
			Produto:       product.Nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: price,
			Subtotal:      subtotal,
		})
		receipt.Total = receipt.Total.Add(subtotal)
	}
	return receipt, nil
}

func (s *OrderService) RecentOrders(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	return s.orderRepo.ListRecentOrders(ctx, limit)
}

var _ IOrderService = (*OrderService)(nil)

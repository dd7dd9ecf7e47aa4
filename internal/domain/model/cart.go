package model

import (
	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/pos/internal/pkg/apperr"
)

var (
	ErrInvalidQuantity = apperr.New(apperr.Validation, "quantity must be at least 1")
	ErrNilProduct      = apperr.New(apperr.Validation, "product is required")
)

type CartState uint8

const (
	CartEmpty        CartState = 0 // 購物車為空
	CartAccumulating CartState = 1 // 累積中
)

// CartItem 的小計於加入當下以商品現價計算，結帳後不再重算
type CartItem struct {
	ProdutoID     uint            `json:"produto_id"`
	Nome          string          `json:"nome"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    int             `json:"quantidade"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Cart 為單一銷售session的暫存購物車
// 由呼叫端持有，生命週期為 Add 到 Checkout 或 Clear 之間
// 狀態機只有 {CartEmpty, CartAccumulating} 兩態
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) State() CartState {
	if len(c.items) == 0 {
		return CartEmpty
	}
	return CartAccumulating
}

// Add 將商品加入購物車，小計 = 數量 * 加入當下單價
func (c *Cart) Add(product *Product, quantidade int) error {
	if product == nil {
		return ErrNilProduct
	}
	if quantidade < 1 {
		return ErrInvalidQuantity
	}
	c.items = append(c.items, CartItem{
		ProdutoID:     product.ID,
		Nome:          product.Nome,
		PrecoUnitario: product.Preco,
		Quantidade:    quantidade,
		Subtotal:      product.Preco.Mul(decimal.NewFromInt(int64(quantidade))),
	})
	return nil
}

// Clear 無條件清空
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, item := range c.items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// Lines 轉為建立訂單的輸入
func (c *Cart) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, OrderLine{ProdutoID: item.ProdutoID, Quantidade: item.Quantidade})
	}
	return lines
}

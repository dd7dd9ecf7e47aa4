package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string      `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	ClienteID uint        `gorm:"column:cliente_id;not null" json:"cliente_id"`
	Data      time.Time   `gorm:"column:data;not null" json:"data"`
	Itens     []OrderItem `gorm:"foreignKey:PedidoID" json:"itens"`
	BaseModel
}

func (Order) TableName() string {
	return "pedidos"
}

// PrecoUnitario 於成交當下快照商品單價
// 之後調整商品價格不會改動歷史營收
// 快照欄位上線前的舊資料為 NULL，報表端以當前價格補值
type OrderItem struct {
	PedidoID      string              `gorm:"column:pedido_id;primaryKey;type:varchar(36)" json:"pedido_id"`
	ProdutoID     uint                `gorm:"column:produto_id;primaryKey" json:"produto_id"`
	Quantidade    int                 `gorm:"column:quantidade;not null" json:"quantidade"`
	PrecoUnitario decimal.NullDecimal `gorm:"column:preco_unitario;type:decimal(10,2)" json:"preco_unitario"`
	BaseModel
}

func (OrderItem) TableName() string {
	return "itens_pedido"
}

// OrderLine 為建立訂單時的輸入項目
type OrderLine struct {
	ProdutoID  uint `json:"produto_id"`
	Quantidade int  `json:"quantidade"`
}

// RecentOrder 為資料檢視面板的最近訂單列
type RecentOrder struct {
	ID      string    `gorm:"column:id" json:"id"`
	Cliente string    `gorm:"column:cliente" json:"cliente"`
	Data    time.Time `gorm:"column:data" json:"data"`
}

// ReceiptData 為收據輸出資料，外部 PDF 產生器以此為輸入
type ReceiptData struct {
	OrderID string          `json:"order_id"`
	Cliente string          `json:"cliente"`
	Data    time.Time       `json:"data"`
	Lines   []ReceiptLine   `json:"lines"`
	Total   decimal.Decimal `json:"total"`
}

type ReceiptLine struct {
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

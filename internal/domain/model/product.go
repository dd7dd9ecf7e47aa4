package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"column:id;primaryKey" json:"id"`
	Nome       string          `gorm:"column:nome;not null;type:varchar(100)" json:"nome"`
	Preco      decimal.Decimal `gorm:"column:preco;not null;type:decimal(10,2)" json:"preco"`
	OrderItems []OrderItem     `gorm:"foreignKey:ProdutoID" json:"-"`
	BaseModel
}

func (Product) TableName() string {
	return "produtos"
}

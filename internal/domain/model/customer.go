package model

import (
	"strings"
)

type Customer struct {
	ID         uint    `gorm:"column:id;primaryKey" json:"id"`
	Nome       string  `gorm:"column:nome;not null;type:varchar(100)" json:"nome"`
	Email      string  `gorm:"column:email;unique;not null;type:varchar(100)" json:"email"`
	Localidade *string `gorm:"column:localidade;type:varchar(100)" json:"localidade,omitempty"`
	Pedidos    []Order `gorm:"foreignKey:ClienteID" json:"pedidos,omitempty"`
	BaseModel
}

func (Customer) TableName() string {
	return "clientes"
}

// UFFromLocalidade 從 "Cidade - UF" 取出州別
// 格式不符時回傳原字串
func UFFromLocalidade(localidade string) string {
	if localidade == "" {
		return ""
	}
	parts := strings.Split(localidade, " - ")
	return parts[len(parts)-1]
}

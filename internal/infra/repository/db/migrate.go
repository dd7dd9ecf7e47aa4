package db

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
)

// InitMigrate 於啟動時執行版本化 schema migration
// 已套用的版本記錄於 migrations 表，重複執行為冪等
func (d *DbDao) InitMigrate() error {
	m := gormigrate.New(d.DB, gormigrate.DefaultOptions, migrations())
	return m.Migrate()
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// 建立四張基礎表
			// sqlite 的外鍵約束無法事後補上，必須在建表時宣告
			ID: "202601010001_create_base_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(
					&clienteV1{}, &produtoV1{}, &pedidoV1{}, &itemPedidoV1{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"itens_pedido", "pedidos", "produtos", "clientes",
				)
			},
		},
		{
			// 地理資訊欄位，取代原本靠捕捉 duplicate column 錯誤的補欄位腳本
			ID: "202601150002_add_clientes_localidade",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().AddColumn(&model.Customer{}, "Localidade")
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&model.Customer{}, "Localidade")
			},
		},
		{
			// 成交單價快照，舊資料維持 NULL
			ID: "202602010003_add_itens_preco_unitario",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().AddColumn(&model.OrderItem{}, "PrecoUnitario")
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&model.OrderItem{}, "PrecoUnitario")
			},
		},
	}
}

// 以下為第一版 schema 的快照型別
// migration 不可引用會繼續演進的 model 結構，否則舊版 migration 會隨之漂移

type clienteV1 struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Nome      string `gorm:"column:nome;not null;type:varchar(100)"`
	Email     string `gorm:"column:email;unique;not null;type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (clienteV1) TableName() string { return "clientes" }

type produtoV1 struct {
	ID        uint            `gorm:"column:id;primaryKey"`
	Nome      string          `gorm:"column:nome;not null;type:varchar(100)"`
	Preco     decimal.Decimal `gorm:"column:preco;not null;type:decimal(10,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (produtoV1) TableName() string { return "produtos" }

type pedidoV1 struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	ClienteID uint      `gorm:"column:cliente_id;not null"`
	Cliente   clienteV1 `gorm:"foreignKey:ClienteID"`
	Data      time.Time `gorm:"column:data;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pedidoV1) TableName() string { return "pedidos" }

type itemPedidoV1 struct {
	PedidoID   string    `gorm:"column:pedido_id;primaryKey;type:varchar(36)"`
	Pedido     pedidoV1  `gorm:"foreignKey:PedidoID"`
	ProdutoID  uint      `gorm:"column:produto_id;primaryKey"`
	Produto    produtoV1 `gorm:"foreignKey:ProdutoID"`
	Quantidade int       `gorm:"column:quantidade;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (itemPedidoV1) TableName() string { return "itens_pedido" }

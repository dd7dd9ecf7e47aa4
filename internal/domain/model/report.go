package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter 的日期範圍為閉區間
// Localidades 為空時不過濾地區
type ReportFilter struct {
	From        time.Time
	To          time.Time
	Localidades []string
}

// SalesRow 為報表主查詢 (pedidos x clientes x itens_pedido x produtos) 的一列
// TotalItem = quantidade * 成交當下單價，舊資料無快照則以現價補值
type SalesRow struct {
	Data       time.Time       `gorm:"column:data" json:"data"`
	PedidoID   string          `gorm:"column:pedido_id" json:"pedido_id"`
	Cliente    string          `gorm:"column:cliente" json:"cliente"`
	Localidade string          `gorm:"column:localidade" json:"localidade"`
	ProdutoID  uint            `gorm:"column:produto_id" json:"produto_id"`
	Produto    string          `gorm:"column:produto" json:"produto"`
	Quantidade int             `gorm:"column:quantidade" json:"quantidade"`
	TotalItem  decimal.Decimal `gorm:"column:total_item" json:"total_item"`
}

type DailyRevenue struct {
	Data        time.Time       `gorm:"column:data" json:"data"`
	Faturamento decimal.Decimal `gorm:"column:faturamento" json:"faturamento"`
}

type CustomerRevenue struct {
	Cliente string          `gorm:"column:cliente" json:"cliente"`
	Total   decimal.Decimal `gorm:"column:total" json:"total"`
}

type ProductQuantity struct {
	Produto    string `gorm:"column:produto" json:"produto"`
	Quantidade int64  `gorm:"column:quantidade" json:"quantidade"`
}

type LocationCount struct {
	Localidade string `gorm:"column:localidade" json:"localidade"`
	Vendas     int64  `gorm:"column:vendas" json:"vendas"`
}

// Summary 為儀表板 KPI
// 無任何訂單時 TicketAvailable 為 false，TicketMedio 為零
type Summary struct {
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
	QtdPedidos       int64           `json:"qtd_pedidos"`
	ItensVendidos    int64           `json:"itens_vendidos"`
	TicketMedio      decimal.Decimal `json:"ticket_medio"`
	TicketAvailable  bool            `json:"ticket_available"`
}

type StateShare struct {
	UF         string          `json:"uf"`
	Total      decimal.Decimal `json:"total"`
	Percentual decimal.Decimal `json:"percentual"`
}

type StateProductRevenue struct {
	UF      string          `json:"uf"`
	Produto string          `json:"produto"`
	Total   decimal.Decimal `json:"total"`
}

type ABCClass string

const (
	ClasseA ABCClass = "A" // 累積佔比 <= 80%
	ClasseB ABCClass = "B" // 累積佔比 <= 95%
	ClasseC ABCClass = "C"
)

type ABCEntry struct {
	ProdutoID     uint            `json:"produto_id"`
	Produto       string          `json:"produto"`
	Total         decimal.Decimal `json:"total"`
	PercTotal     decimal.Decimal `json:"perc_total"`
	PercAcumulado decimal.Decimal `json:"perc_acumulado"`
	Classe        ABCClass        `json:"classe"`
}

// Forecast 為未來七個日曆日的線性趨勢投影
type Forecast struct {
	Projections []DailyRevenue  `json:"projections"`
	MeanDaily   decimal.Decimal `json:"mean_daily"`
}

// DateBounds 為 pedidos 的日期上下界，供篩選器預設值
type DateBounds struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

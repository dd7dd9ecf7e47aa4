package db

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
)

// 報表每列營收 = quantidade * 成交當下單價
// 快照欄位上線前的舊資料為 NULL，以商品現價補值
const lineRevenueExpr = "ip.quantidade * COALESCE(ip.preco_unitario, pr.preco)"

type IReportRepository interface {
	SalesRows(ctx context.Context, filter model.ReportFilter) ([]model.SalesRow, error)
	DailyRevenue(ctx context.Context, filter model.ReportFilter) ([]model.DailyRevenue, error)
	TopCustomers(ctx context.Context, filter model.ReportFilter, limit int) ([]model.CustomerRevenue, error)
	TopProductsByQuantity(ctx context.Context, filter model.ReportFilter, limit int) ([]model.ProductQuantity, error)
	SalesByLocation(ctx context.Context, filter model.ReportFilter) ([]model.LocationCount, error)
	DateBounds(ctx context.Context) (*model.DateBounds, bool, error)
	Localidades(ctx context.Context) ([]string, error)
}

type ReportRepo struct {
	dbDao *DbDao
}

func NewReportRepo(dbDao *DbDao) *ReportRepo {
	return &ReportRepo{dbDao: dbDao}
}

// 主查詢的共用基底，條件值一律走 placeholder，不做字串拼接
func (s *ReportRepo) joined(ctx context.Context, filter model.ReportFilter) *gorm.DB {
	query := s.dbDao.WithContext(ctx).
		Table("pedidos p").
		Joins("JOIN clientes c ON p.cliente_id = c.id").
		Joins("JOIN itens_pedido ip ON p.id = ip.pedido_id").
		Joins("JOIN produtos pr ON ip.produto_id = pr.id").
		Where("p.data BETWEEN ? AND ?", filter.From, filter.To)
	if len(filter.Localidades) > 0 {
		query = query.Where("c.localidade IN ?", filter.Localidades)
	}
	return query
}

// Read - 篩選範圍內的全部銷售明細列
func (s *ReportRepo) SalesRows(ctx context.Context, filter model.ReportFilter) ([]model.SalesRow, error) {
	var rows []model.SalesRow
	err := s.joined(ctx, filter).
		Select("p.data AS data, p.id AS pedido_id, c.nome AS cliente, " +
			"COALESCE(c.localidade, '') AS localidade, " +
			"pr.id AS produto_id, pr.nome AS produto, ip.quantidade AS quantidade, " +
			lineRevenueExpr + " AS total_item").
		Order("p.data, p.id").
		Scan(&rows).Error
	return rows, err
}

// Read - 每日營收，依日期遞增
func (s *ReportRepo) DailyRevenue(ctx context.Context, filter model.ReportFilter) ([]model.DailyRevenue, error) {
	var daily []model.DailyRevenue
	err := s.joined(ctx, filter).
		Select("p.data AS data, SUM(" + lineRevenueExpr + ") AS faturamento").
		Group("p.data").
		Order("p.data").
		Scan(&daily).Error
	return daily, err
}

// Read - 營收前N名客戶
func (s *ReportRepo) TopCustomers(ctx context.Context, filter model.ReportFilter, limit int) ([]model.CustomerRevenue, error) {
	var top []model.CustomerRevenue
	err := s.joined(ctx, filter).
		Select("c.nome AS cliente, SUM(" + lineRevenueExpr + ") AS total").
		Group("c.nome").
		Order("total DESC").
		Limit(limit).
		Scan(&top).Error
	return top, err
}

// Read - 銷量前N名商品
func (s *ReportRepo) TopProductsByQuantity(ctx context.Context, filter model.ReportFilter, limit int) ([]model.ProductQuantity, error) {
	var top []model.ProductQuantity
	err := s.joined(ctx, filter).
		Select("pr.nome AS produto, SUM(ip.quantidade) AS quantidade").
		Group("pr.nome").
		Order("quantidade DESC").
		Limit(limit).
		Scan(&top).Error
	return top, err
}

// Read - 各地區的銷售列數，供地理分布顯示
func (s *ReportRepo) SalesByLocation(ctx context.Context, filter model.ReportFilter) ([]model.LocationCount, error) {
	var counts []model.LocationCount
	err := s.joined(ctx, filter).
		Where("c.localidade IS NOT NULL").
		Select("c.localidade AS localidade, COUNT(*) AS vendas").
		Group("c.localidade").
		Order("vendas DESC").
		Scan(&counts).Error
	return counts, err
}

// Read - 訂單日期上下界
// 尚無任何訂單時回傳 ok=false
func (s *ReportRepo) DateBounds(ctx context.Context) (*model.DateBounds, bool, error) {
	var bounds struct {
		Min sql.NullTime `gorm:"column:min"`
		Max sql.NullTime `gorm:"column:max"`
	}
	err := s.dbDao.WithContext(ctx).
		Table("pedidos").
		Select("MIN(data) AS min, MAX(data) AS max").
		Scan(&bounds).Error
	if err != nil {
		return nil, false, err
	}
	if !bounds.Min.Valid || !bounds.Max.Valid {
		return nil, false, nil
	}
	return &model.DateBounds{Min: bounds.Min.Time, Max: bounds.Max.Time}, true, nil
}

// Read - 已登錄的地區清單，供篩選器選項
func (s *ReportRepo) Localidades(ctx context.Context) ([]string, error) {
	var localidades []string
	err := s.dbDao.WithContext(ctx).
		Table("clientes").
		Where("localidade IS NOT NULL").
		Distinct("localidade").
		Order("localidade").
		Pluck("localidade", &localidades).Error
	return localidades, err
}

// 正規化為當日零點，確保同一天的訂單能群組在一起
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ IReportRepository = (*ReportRepo)(nil)

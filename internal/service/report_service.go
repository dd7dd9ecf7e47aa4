package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
)

const (
	// 儀表板固定的排行榜長度
	topCustomersLimit = 10
	topStatesLimit    = 3
	productsPerState  = 3
)

var (
	abcClassAThreshold = decimal.NewFromInt(80)
	abcClassBThreshold = decimal.NewFromInt(95)
	percentBase        = decimal.NewFromInt(100)
)

type IReportService interface {
	Summary(ctx context.Context, filter model.ReportFilter) (*model.Summary, error)
	DailyRevenue(ctx context.Context, filter model.ReportFilter) ([]model.DailyRevenue, error)
	TopCustomers(ctx context.Context, filter model.ReportFilter) ([]model.CustomerRevenue, error)
	TopProductsByQuantity(ctx context.Context, filter model.ReportFilter, limit int) ([]model.ProductQuantity, error)
	StateShares(ctx context.Context, filter model.ReportFilter) ([]model.StateShare, error)
	TopProductsPerState(ctx context.Context, filter model.ReportFilter) ([]model.StateProductRevenue, error)
	ABC(ctx context.Context, filter model.ReportFilter) ([]model.ABCEntry, error)
	Forecast(ctx context.Context, filter model.ReportFilter) (*model.Forecast, error)
	SalesByLocation(ctx context.Context, filter model.ReportFilter) ([]model.LocationCount, error)
	DateBounds(ctx context.Context) (*model.DateBounds, bool, error)
	Localidades(ctx context.Context) ([]string, error)
}

type ReportService struct {
	reportRepo db.IReportRepository
}

func NewReportService(reportRepo db.IReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Summary 計算儀表板 KPI
// 空集合一律回傳零值，比值類一律防除零
func (s *ReportService) Summary(ctx context.Context, filter model.ReportFilter) (*model.Summary, error) {
	rows, err := s.reportRepo.SalesRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return computeSummary(rows), nil
}

func (s *ReportService) DailyRevenue(ctx context.Context, filter model.ReportFilter) ([]model.DailyRevenue, error) {
	return s.reportRepo.DailyRevenue(ctx, filter)
}

func (s *ReportService) TopCustomers(ctx context.Context, filter model.ReportFilter) ([]model.CustomerRevenue, error) {
	return s.reportRepo.TopCustomers(ctx, filter, topCustomersLimit)
}

func (s *ReportService) TopProductsByQuantity(ctx context.Context, filter model.ReportFilter, limit int) ([]model.ProductQuantity, error) {
	return s.reportRepo.TopProductsByQuantity(ctx, filter, limit)
}

// StateShares 計算各州營收與佔比
// 無地區資訊的列不納入
func (s *ReportService) StateShares(ctx context.Context, filter model.ReportFilter) ([]model.StateShare, error) {
	rows, err := s.reportRepo.SalesRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return computeStateShares(rows), nil
}

// TopProductsPerState 取營收前三名的州，各列出其營收前三名商品
func (s *ReportService) TopProductsPerState(ctx context.Context, filter model.ReportFilter) ([]model.StateProductRevenue, error) {
	rows, err := s.reportRepo.SalesRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return computeTopProductsPerState(rows, topStatesLimit, productsPerState), nil
}

// ABC 依營收貢獻將商品分級
// A: 累積佔比 <= 80%，B: <= 95%，其餘 C，門檻皆為含等於
func (s *ReportService) ABC(ctx context.Context, filter model.ReportFilter) ([]model.ABCEntry, error) {
	rows, err := s.reportRepo.SalesRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return computeABC(rows), nil
}

func (s *ReportService) SalesByLocation(ctx context.Context, filter model.ReportFilter) ([]model.LocationCount, error) {
	return s.reportRepo.SalesByLocation(ctx, filter)
}

func (s *ReportService) DateBounds(ctx context.Context) (*model.DateBounds, bool, error) {
	return s.reportRepo.DateBounds(ctx)
}

func (s *ReportService) Localidades(ctx context.Context) ([]string, error) {
	return s.reportRepo.Localidades(ctx)
}

func computeSummary(rows []model.SalesRow) *model.Summary {
	summary := &model.Summary{
		FaturamentoTotal: decimal.NewFromInt(0),
		TicketMedio:      decimal.NewFromInt(0),
	}

	orders := make(map[string]struct{})
	for _, row := range rows {
		summary.FaturamentoTotal = summary.FaturamentoTotal.Add(row.TotalItem)
		summary.ItensVendidos += int64(row.Quantidade)
		orders[row.PedidoID] = struct{}{}
	}
	summary.QtdPedidos = int64(len(orders))

	// 無訂單時以 not available 呈現，不產生除零
	if summary.QtdPedidos > 0 {
		summary.TicketMedio = summary.FaturamentoTotal.Div(decimal.NewFromInt(summary.QtdPedidos))
		summary.TicketAvailable = true
	}
	return summary
}

func computeStateShares(rows []model.SalesRow) []model.StateShare {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.NewFromInt(0)
	for _, row := range rows {
		uf := model.UFFromLocalidade(row.Localidade)
		if uf == "" {
			continue
		}
		totals[uf] = totalOrZero(totals, uf).Add(row.TotalItem)
		grand = grand.Add(row.TotalItem)
	}

	shares := make([]model.StateShare, 0, len(totals))
	for uf, total := range totals {
		share := model.StateShare{UF: uf, Total: total, Percentual: decimal.NewFromInt(0)}
		if grand.IsPositive() {
			share.Percentual = total.Div(grand).Mul(percentBase)
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Total.Equal(shares[j].Total) {
			return shares[i].Total.GreaterThan(shares[j].Total)
		}
		return shares[i].UF < shares[j].UF
	})
	return shares
}

func computeTopProductsPerState(rows []model.SalesRow, nStates, nProducts int) []model.StateProductRevenue {
	shares := computeStateShares(rows)
	if len(shares) > nStates {
		shares = shares[:nStates]
	}

	result := make([]model.StateProductRevenue, 0, nStates*nProducts)
	for _, share := range shares {
		perProduct := make(map[string]decimal.Decimal)
		for _, row := range rows {
			if model.UFFromLocalidade(row.Localidade) != share.UF {
				continue
			}
			perProduct[row.Produto] = totalOrZero(perProduct, row.Produto).Add(row.TotalItem)
		}

		products := make([]model.StateProductRevenue, 0, len(perProduct))
		for nome, total := range perProduct {
			products = append(products, model.StateProductRevenue{UF: share.UF, Produto: nome, Total: total})
		}
		sort.Slice(products, func(i, j int) bool {
			if !products[i].Total.Equal(products[j].Total) {
				return products[i].Total.GreaterThan(products[j].Total)
			}
			return products[i].Produto < products[j].Produto
		})
		if len(products) > nProducts {
			products = products[:nProducts]
		}
		result = append(result, products...)
	}
	return result
}

func computeABC(rows []model.SalesRow) []model.ABCEntry {
	type productTotal struct {
		id    uint
		nome  string
		total decimal.Decimal
	}

	index := make(map[uint]int)
	totals := make([]productTotal, 0)
	grand := decimal.NewFromInt(0)
	for _, row := range rows {
		pos, ok := index[row.ProdutoID]
		if !ok {
			pos = len(totals)
			index[row.ProdutoID] = pos
			totals = append(totals, productTotal{id: row.ProdutoID, nome: row.Produto, total: decimal.NewFromInt(0)})
		}
		totals[pos].total = totals[pos].total.Add(row.TotalItem)
		grand = grand.Add(row.TotalItem)
	}
	if !grand.IsPositive() {
		return []model.ABCEntry{}
	}

	// 營收相同時以商品ID遞增決定先後，讓分級結果可重現
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].total.Equal(totals[j].total) {
			return totals[i].total.GreaterThan(totals[j].total)
		}
		return totals[i].id < totals[j].id
	})

	entries := make([]model.ABCEntry, 0, len(totals))
	cum := decimal.NewFromInt(0)
	for _, pt := range totals {
		cum = cum.Add(pt.total)
		percAcumulado := cum.Div(grand).Mul(percentBase)

		classe := model.ClasseC
		switch {
		case percAcumulado.LessThanOrEqual(abcClassAThreshold):
			classe = model.ClasseA
		case percAcumulado.LessThanOrEqual(abcClassBThreshold):
			classe = model.ClasseB
		}

		entries = append(entries, model.ABCEntry{
			ProdutoID:     pt.id,
			Produto:       pt.nome,
			Total:         pt.total,
			PercTotal:     pt.total.Div(grand).Mul(percentBase),
			PercAcumulado: percAcumulado,
			Classe:        classe,
		})
	}
	return entries
}

func totalOrZero(m map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.NewFromInt(0)
}

var _ IReportService = (*ReportService)(nil)

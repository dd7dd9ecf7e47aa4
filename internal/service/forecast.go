package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/pkg/apperr"
)

var ErrInsufficientData = apperr.New(apperr.DataUnavailable, "not enough distinct dates to fit a trend")

// 投影範圍固定為未來七個日曆日
const forecastHorizonDays = 7

// Forecast 以每日營收對日序做最小平方法擬合，投影下一週
// 篩選範圍內不足兩個相異日期時回傳 ErrInsufficientData，不會給出數字
func (s *ReportService) Forecast(ctx context.Context, filter model.ReportFilter) (*model.Forecast, error) {
	daily, err := s.reportRepo.DailyRevenue(ctx, filter)
	if err != nil {
		return nil, err
	}
	return forecastFromDaily(daily)
}

func forecastFromDaily(daily []model.DailyRevenue) (*model.Forecast, error) {
	if len(daily) < 2 {
		return nil, ErrInsufficientData
	}

	xs := make([]float64, len(daily))
	ys := make([]float64, len(daily))
	for i, d := range daily {
		xs[i] = dayOrdinal(d.Data)
		ys[i] = d.Faturamento.InexactFloat64()
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	last := daily[len(daily)-1].Data
	projections := make([]model.DailyRevenue, 0, forecastHorizonDays)
	projected := make([]float64, 0, forecastHorizonDays)
	for i := 1; i <= forecastHorizonDays; i++ {
		day := last.AddDate(0, 0, i)
		value := alpha + beta*dayOrdinal(day)
		projected = append(projected, value)
		projections = append(projections, model.DailyRevenue{
			Data:        day,
			Faturamento: decimal.NewFromFloat(value),
		})
	}

	return &model.Forecast{
		Projections: projections,
		MeanDaily:   decimal.NewFromFloat(stat.Mean(projected, nil)),
	}, nil
}

// 自 epoch 起算的日序，擬合只需要等距的序數
func dayOrdinal(t time.Time) float64 {
	return float64(t.Unix() / 86400)
}

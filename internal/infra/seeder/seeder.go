// Package seeder 產生展示用的假資料
// 僅作為測試資料產生器，所有寫入都經過正式的登錄操作
package seeder

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/service"
)

var (
	firstNames = []string{"Lucas", "Marcos", "Julia", "Fernanda", "Roberto", "Patrícia", "Gabriel", "Aline", "Ricardo", "Beatriz"}
	lastNames  = []string{"Silva", "Costa", "Santos", "Oliveira", "Souza", "Pereira", "Martins", "Rocha"}
	categories = []string{"Monitor", "Teclado", "Mouse", "Cadeira", "Headset", "Webcam", "Smartphone", "SSD 1TB"}
	locations  = []string{
		"São Paulo - SP", "Rio de Janeiro - RJ", "Belo Horizonte - MG", "Curitiba - PR",
		"Porto Alegre - RS", "Salvador - BA", "Fortaleza - CE", "Brasília - DF",
		"Recife - PE", "Florianópolis - SC",
	}
)

type Spec struct {
	Customers        int
	Products         int
	Orders           int
	MaxLinesPerOrder int
	From             time.Time
	To               time.Time
	Seed             uint64
}

type Result struct {
	Customers int
	Products  int
	Orders    int
}

type Seeder struct {
	customerSvc service.ICustomerService
	productSvc  service.IProductService
	orderSvc    service.IOrderService
}

func NewSeeder(customerSvc service.ICustomerService, productSvc service.IProductService, orderSvc service.IOrderService) *Seeder {
	return &Seeder{
		customerSvc: customerSvc,
		productSvc:  productSvc,
		orderSvc:    orderSvc,
	}
}

// Run 依序灌入客戶、商品、訂單
// 相同 Seed 產生相同的資料序列
func (s *Seeder) Run(ctx context.Context, spec Spec) (*Result, error) {
	if spec.MaxLinesPerOrder < 1 {
		spec.MaxLinesPerOrder = 1
	}
	rng := rand.New(rand.NewPCG(spec.Seed, spec.Seed))
	result := &Result{}

	customers := make([]*model.Customer, 0, spec.Customers)
	for i := 0; i < spec.Customers; i++ {
		nome := fmt.Sprintf("%s %s", firstNames[rng.IntN(len(firstNames))], lastNames[rng.IntN(len(lastNames))])
		// 序號避免 email 撞到唯一鍵
		email := fmt.Sprintf("%s%d@email.com", strings.ReplaceAll(strings.ToLower(nome), " ", "."), i+1)
		localidade := locations[rng.IntN(len(locations))]

		customer, err := s.customerSvc.CreateCustomer(ctx, nome, email, localidade)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("seed customer failed")
			return result, err
		}
		customers = append(customers, customer)
		result.Customers++
	}

	products := make([]*model.Product, 0, spec.Products)
	for i := 0; i < spec.Products; i++ {
		nome := fmt.Sprintf("%s Pro %d", categories[rng.IntN(len(categories))], i+1)
		preco := decimal.NewFromFloat(100 + rng.Float64()*2700).Round(2)

		product, err := s.productSvc.CreateProduct(ctx, nome, preco)
		if err != nil {
			log.Error().Err(err).Str("produto", nome).Msg("seed product failed")
			return result, err
		}
		products = append(products, product)
		result.Products++
	}

	if spec.Orders > 0 && (len(customers) == 0 || len(products) == 0) {
		return result, fmt.Errorf("cannot seed orders without customers and products")
	}

	window := int(spec.To.Sub(spec.From).Hours()/24) + 1
	if window < 1 {
		window = 1
	}
	for i := 0; i < spec.Orders; i++ {
		customer := customers[rng.IntN(len(customers))]
		data := spec.From.AddDate(0, 0, rng.IntN(window))

		// 每張訂單 1..MaxLinesPerOrder 個相異商品
		nLines := 1 + rng.IntN(spec.MaxLinesPerOrder)
		if nLines > len(products) {
			nLines = len(products)
		}
		lines := make([]model.OrderLine, 0, nLines)
		for _, idx := range rng.Perm(len(products))[:nLines] {
			lines = append(lines, model.OrderLine{
				ProdutoID:  products[idx].ID,
				Quantidade: 1 + rng.IntN(3),
			})
		}

		if _, err := s.orderSvc.CreateOrder(ctx, customer.ID, data, lines); err != nil {
			log.Error().Err(err).Uint("cliente_id", customer.ID).Msg("seed order failed")
			return result, err
		}
		result.Orders++
	}

	return result, nil
}

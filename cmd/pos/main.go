package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/RoyceAzure/lab/pos/internal/config"
	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/pos/internal/infra/seeder"
	"github.com/RoyceAzure/lab/pos/internal/service"
)

const dateLayout = "2006-01-02"

type application struct {
	customerSvc service.ICustomerService
	productSvc  service.IProductService
	orderSvc    service.IOrderService
	reportSvc   service.IReportService
}

func main() {
	app := &cli.App{
		Name:  "pos",
		Usage: "ponto de venda: cadastros, vendas e relatórios sobre o vendas.db",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "caminho do arquivo do banco (sobrepõe POS_DB_PATH)",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			seedCommand(),
			reportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// setup 載入設定、開啟資料庫並套用 migration
func setup(c *cli.Context) (*application, error) {
	cf, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	dbPath := cf.DbPath
	if c.String("db") != "" {
		dbPath = c.String("db")
	}

	conn, err := db.GetDbConn(dbPath)
	if err != nil {
		return nil, err
	}
	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		return nil, err
	}

	customerRepo := db.NewCustomerRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao)
	orderRepo := db.NewOrderRepo(dbDao)
	reportRepo := db.NewReportRepo(dbDao)

	return &application{
		customerSvc: service.NewCustomerService(customerRepo),
		productSvc:  service.NewProductService(productRepo),
		orderSvc:    service.NewOrderService(orderRepo, customerRepo, productRepo),
		reportSvc:   service.NewReportService(reportRepo),
	}, nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica as migrations pendentes e sai",
		Action: func(c *cli.Context) error {
			if _, err := setup(c); err != nil {
				return err
			}
			log.Info().Msg("schema up to date")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insere dados de demonstração",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "customers", Value: 40},
			&cli.IntFlag{Name: "products", Value: 18},
			&cli.IntFlag{Name: "orders", Value: 50},
			&cli.IntFlag{Name: "max-lines", Value: 8},
			&cli.Uint64Flag{Name: "seed", Value: 2026},
		},
		Action: func(c *cli.Context) error {
			app, err := setup(c)
			if err != nil {
				return err
			}

			sd := seeder.NewSeeder(app.customerSvc, app.productSvc, app.orderSvc)
			result, err := sd.Run(c.Context, seeder.Spec{
				Customers:        c.Int("customers"),
				Products:         c.Int("products"),
				Orders:           c.Int("orders"),
				MaxLinesPerOrder: c.Int("max-lines"),
				From:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				To:               time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
				Seed:             c.Uint64("seed"),
			})
			if err != nil {
				return err
			}
			log.Info().
				Int("customers", result.Customers).
				Int("products", result.Products).
				Int("orders", result.Orders).
				Msg("seed finished")
			return nil
		},
	}
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "imprime o painel de vendas do período",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "data inicial (YYYY-MM-DD), padrão: primeira venda"},
			&cli.StringFlag{Name: "to", Usage: "data final (YYYY-MM-DD), padrão: última venda"},
			&cli.StringSliceFlag{Name: "localidade", Usage: "filtra por localidade, repetível"},
		},
		Action: func(c *cli.Context) error {
			app, err := setup(c)
			if err != nil {
				return err
			}
			return runReport(c, app)
		},
	}
}

func runReport(c *cli.Context, app *application) error {
	ctx := c.Context

	bounds, ok, err := app.reportSvc.DateBounds(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("sem vendas registradas")
		return nil
	}

	filter := model.ReportFilter{
		From:        bounds.Min,
		To:          bounds.Max,
		Localidades: c.StringSlice("localidade"),
	}
	if c.String("from") != "" {
		if filter.From, err = time.Parse(dateLayout, c.String("from")); err != nil {
			return err
		}
	}
	if c.String("to") != "" {
		if filter.To, err = time.Parse(dateLayout, c.String("to")); err != nil {
			return err
		}
	}

	summary, err := app.reportSvc.Summary(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Printf("Período: %s a %s\n", filter.From.Format(dateLayout), filter.To.Format(dateLayout))
	fmt.Printf("Faturamento total: R$ %s\n", summary.FaturamentoTotal.StringFixed(2))
	fmt.Printf("Pedidos: %d | Itens vendidos: %d\n", summary.QtdPedidos, summary.ItensVendidos)
	if summary.TicketAvailable {
		fmt.Printf("Ticket médio: R$ %s\n", summary.TicketMedio.StringFixed(2))
	} else {
		fmt.Println("Ticket médio: n/d")
	}

	daily, err := app.reportSvc.DailyRevenue(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Println("\nFaturamento diário:")
	for _, d := range daily {
		fmt.Printf("  %s  R$ %s\n", d.Data.Format(dateLayout), d.Faturamento.StringFixed(2))
	}

	top, err := app.reportSvc.TopCustomers(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Println("\nMelhores clientes:")
	for i, t := range top {
		fmt.Printf("  %2d. %-30s R$ %s\n", i+1, t.Cliente, t.Total.StringFixed(2))
	}

	abc, err := app.reportSvc.ABC(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Println("\nCurva ABC:")
	for _, e := range abc {
		fmt.Printf("  [%s] %-30s R$ %-12s %6s%%\n", e.Classe, e.Produto, e.Total.StringFixed(2), e.PercAcumulado.StringFixed(1))
	}

	forecast, err := app.reportSvc.Forecast(ctx, filter)
	switch {
	case errors.Is(err, service.ErrInsufficientData):
		fmt.Println("\nTendência: dados insuficientes para projeção")
	case err != nil:
		return err
	default:
		fmt.Printf("\nPrevisão média diária para os próximos 7 dias: R$ %s\n", forecast.MeanDaily.StringFixed(2))
	}
	return nil
}

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RoyceAzure/lab/pos/internal/domain/model"
	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
)

type OrderServiceTestSuite struct {
	suite.Suite
	dir             string
	dbDao           *db.DbDao
	orderService    *OrderService
	customerService *CustomerService
	productService  *ProductService
}

func (suite *OrderServiceTestSuite) SetupSuite() {
	dir, err := os.MkdirTemp("", "pos-order-service-*")
	require.NoError(suite.T(), err)
	suite.dir = dir

	conn, err := db.GetDbConn(filepath.Join(dir, "vendas.db"))
	require.NoError(suite.T(), err)
	suite.dbDao = db.NewDbDao(conn)
	require.NoError(suite.T(), suite.dbDao.InitMigrate())

	customerRepo := db.NewCustomerRepo(suite.dbDao)
	productRepo := db.NewProductRepo(suite.dbDao)
	orderRepo := db.NewOrderRepo(suite.dbDao)
	suite.customerService = NewCustomerService(customerRepo)
	suite.productService = NewProductService(productRepo)
	suite.orderService = NewOrderService(orderRepo, customerRepo, productRepo)
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM itens_pedido")
	suite.dbDao.Exec("DELETE FROM pedidos")
	suite.dbDao.Exec("DELETE FROM produtos")
	suite.dbDao.Exec("DELETE FROM clientes")
}

func (suite *OrderServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.dbDao.DB.DB()
	sqlDB.Close()
	os.RemoveAll(suite.dir)
}

func (suite *OrderServiceTestSuite) fixtures() (*model.Customer, *model.Product, *model.Product) {
	customer, err := suite.customerService.CreateCustomer(context.Background(), "Ana Souza", "ana@email.com", "São Paulo - SP")
	require.NoError(suite.T(), err)
	notebook, err := suite.productService.CreateProduct(context.Background(), "Notebook", decimal.RequireFromString("10.00"))
	require.NoError(suite.T(), err)
	mouse, err := suite.productService.CreateProduct(context.Background(), "Mouse", decimal.RequireFromString("5.00"))
	require.NoError(suite.T(), err)
	return customer, notebook, mouse
}

func (suite *OrderServiceTestSuite) TestCreateOrder() {
	customer, notebook, mouse := suite.fixtures()
	day := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	order, err := suite.orderService.CreateOrder(context.Background(), customer.ID, day, []model.OrderLine{
		{ProdutoID: notebook.ID, Quantidade: 2},
		{ProdutoID: mouse.ID, Quantidade: 1},
	})

	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), order.ID)
	// 訂單日期正規化為當日零點
	require.Equal(suite.T(), time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), order.Data)

	stored, err := suite.orderService.GetOrder(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), stored.Itens, 2)
	for _, item := range stored.Itens {
		require.True(suite.T(), item.PrecoUnitario.Valid)
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_EmptyLines() {
	customer, _, _ := suite.fixtures()

	_, err := suite.orderService.CreateOrder(context.Background(), customer.ID, time.Now(), nil)
	require.ErrorIs(suite.T(), err, ErrEmptyCart)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownCustomer() {
	_, notebook, _ := suite.fixtures()

	_, err := suite.orderService.CreateOrder(context.Background(), 9999, time.Now(), []model.OrderLine{
		{ProdutoID: notebook.ID, Quantidade: 1},
	})
	require.ErrorIs(suite.T(), err, ErrCustomerNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownProduct() {
	customer, _, _ := suite.fixtures()

	_, err := suite.orderService.CreateOrder(context.Background(), customer.ID, time.Now(), []model.OrderLine{
		{ProdutoID: 9999, Quantidade: 1},
	})
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_InvalidQuantity() {
	customer, notebook, _ := suite.fixtures()

	_, err := suite.orderService.CreateOrder(context.Background(), customer.ID, time.Now(), []model.OrderLine{
		{ProdutoID: notebook.ID, Quantidade: 0},
	})
	require.ErrorIs(suite.T(), err, model.ErrInvalidQuantity)
}

func (suite *OrderServiceTestSuite) TestCheckout_ClearsCartOnSuccess() {
	customer, notebook, mouse := suite.fixtures()

	cart := model.NewCart()
	require.NoError(suite.T(), cart.Add(notebook, 2))
	require.NoError(suite.T(), cart.Add(mouse, 1))

	order, err := suite.orderService.Checkout(context.Background(), cart, customer.ID, time.Now())

	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), order.ID)
	require.Equal(suite.T(), model.CartEmpty, cart.State())
}

func (suite *OrderServiceTestSuite) TestCheckout_KeepsCartOnFailure() {
	_, notebook, _ := suite.fixtures()

	cart := model.NewCart()
	require.NoError(suite.T(), cart.Add(notebook, 1))

	// 客戶不存在導致失敗，購物車內容必須保留供重試
	_, err := suite.orderService.Checkout(context.Background(), cart, 9999, time.Now())

	require.ErrorIs(suite.T(), err, ErrCustomerNotFound)
	require.Equal(suite.T(), model.CartAccumulating, cart.State())
	require.Len(suite.T(), cart.Items(), 1)
}

func (suite *OrderServiceTestSuite) TestCheckout_EmptyCart() {
	customer, _, _ := suite.fixtures()

	_, err := suite.orderService.Checkout(context.Background(), model.NewCart(), customer.ID, time.Now())
	require.ErrorIs(suite.T(), err, ErrEmptyCart)

	_, err = suite.orderService.Checkout(context.Background(), nil, customer.ID, time.Now())
	require.ErrorIs(suite.T(), err, ErrEmptyCart)
}

func (suite *OrderServiceTestSuite) TestGetOrder_NotFound() {
	_, err := suite.orderService.GetOrder(context.Background(), "no-such-order")
	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
}

// 收據金額必須依成交當下的快照價計算，不受事後調價影響
func (suite *OrderServiceTestSuite) TestReceipt_UsesSnapshotPrice() {
	customer, notebook, mouse := suite.fixtures()

	order, err := suite.orderService.CreateOrder(context.Background(), customer.ID, time.Now(), []model.OrderLine{
		{ProdutoID: notebook.ID, Quantidade: 2},
		{ProdutoID: mouse.ID, Quantidade: 1},
	})
	require.NoError(suite.T(), err)

	suite.dbDao.Table("produtos").Where("id = ?", notebook.ID).Update("preco", "999.00")

	receipt, err := suite.orderService.Receipt(context.Background(), order.ID)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Ana Souza", receipt.Cliente)
	require.Len(suite.T(), receipt.Lines, 2)
	require.True(suite.T(), receipt.Total.Equal(decimal.RequireFromString("25.00")),
		"got %s", receipt.Total)
}

func (suite *OrderServiceTestSuite) TestRecentOrders() {
	customer, notebook, _ := suite.fixtures()

	for i := 0; i < 3; i++ {
		_, err := suite.orderService.CreateOrder(context.Background(), customer.ID, time.Now(), []model.OrderLine{
			{ProdutoID: notebook.ID, Quantidade: 1},
		})
		require.NoError(suite.T(), err)
	}

	recent, err := suite.orderService.RecentOrders(context.Background(), 2)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), recent, 2)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

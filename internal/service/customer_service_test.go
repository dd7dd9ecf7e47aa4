package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RoyceAzure/lab/pos/internal/infra/repository/db"
)

type EntryServiceTestSuite struct {
	suite.Suite
	dir             string
	dbDao           *db.DbDao
	customerService *CustomerService
	productService  *ProductService
}

func (suite *EntryServiceTestSuite) SetupSuite() {
	dir, err := os.MkdirTemp("", "pos-entry-service-*")
	require.NoError(suite.T(), err)
	suite.dir = dir

	conn, err := db.GetDbConn(filepath.Join(dir, "vendas.db"))
	require.NoError(suite.T(), err)
	suite.dbDao = db.NewDbDao(conn)
	require.NoError(suite.T(), suite.dbDao.InitMigrate())

	suite.customerService = NewCustomerService(db.NewCustomerRepo(suite.dbDao))
	suite.productService = NewProductService(db.NewProductRepo(suite.dbDao))
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM produtos")
	suite.dbDao.Exec("DELETE FROM clientes")
}

func (suite *EntryServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.dbDao.DB.DB()
	sqlDB.Close()
	os.RemoveAll(suite.dir)
}

func (suite *EntryServiceTestSuite) TestCreateCustomer() {
	customer, err := suite.customerService.CreateCustomer(context.Background(), "  Ana Souza  ", "ana@email.com", "São Paulo - SP")

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), customer.ID)
	// 前後空白一律修剪
	require.Equal(suite.T(), "Ana Souza", customer.Nome)
	require.NotNil(suite.T(), customer.Localidade)
	require.Equal(suite.T(), "São Paulo - SP", *customer.Localidade)
}

func (suite *EntryServiceTestSuite) TestCreateCustomer_OptionalLocalidade() {
	customer, err := suite.customerService.CreateCustomer(context.Background(), "Ana", "ana@email.com", "  ")

	require.NoError(suite.T(), err)
	require.Nil(suite.T(), customer.Localidade)
}

func (suite *EntryServiceTestSuite) TestCreateCustomer_RequiredFields() {
	_, err := suite.customerService.CreateCustomer(context.Background(), "", "ana@email.com", "")
	require.ErrorIs(suite.T(), err, ErrRequiredField)

	_, err = suite.customerService.CreateCustomer(context.Background(), "Ana", "   ", "")
	require.ErrorIs(suite.T(), err, ErrRequiredField)
}

func (suite *EntryServiceTestSuite) TestCreateCustomer_DuplicateEmail() {
	_, err := suite.customerService.CreateCustomer(context.Background(), "Ana", "ana@email.com", "")
	require.NoError(suite.T(), err)

	_, err = suite.customerService.CreateCustomer(context.Background(), "Outra Ana", "ana@email.com", "")
	require.ErrorIs(suite.T(), err, ErrDuplicateEmail)
}

func (suite *EntryServiceTestSuite) TestGetCustomerByEmail_NotFound() {
	_, err := suite.customerService.GetCustomerByEmail(context.Background(), "ninguem@email.com")
	require.ErrorIs(suite.T(), err, ErrCustomerNotFound)
}

func (suite *EntryServiceTestSuite) TestCreateProduct() {
	product, err := suite.productService.CreateProduct(context.Background(), "Notebook", decimal.RequireFromString("1899.90"))

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), product.ID)
	require.True(suite.T(), product.Preco.Equal(decimal.RequireFromString("1899.90")))
}

func (suite *EntryServiceTestSuite) TestCreateProduct_InvalidPrice() {
	_, err := suite.productService.CreateProduct(context.Background(), "Notebook", decimal.Zero)
	require.ErrorIs(suite.T(), err, ErrInvalidPrice)

	_, err = suite.productService.CreateProduct(context.Background(), "Notebook", decimal.RequireFromString("-1.00"))
	require.ErrorIs(suite.T(), err, ErrInvalidPrice)
}

func (suite *EntryServiceTestSuite) TestCreateProduct_RequiredName() {
	_, err := suite.productService.CreateProduct(context.Background(), "  ", decimal.RequireFromString("10.00"))
	require.ErrorIs(suite.T(), err, ErrRequiredField)
}

func (suite *EntryServiceTestSuite) TestGetProduct_NotFound() {
	_, err := suite.productService.GetProduct(context.Background(), 9999)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}

package productrepo_test

import (
	"context"
	"testing"
	"time"

	"fornello/internal/adapters/out/postgres/productrepo"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"
	"fornello/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite verifies product persistence against
// a real PostgreSQL instance.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.VariationDTO{},
	))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE product_variations, products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_PersistsProductAndVariations() {
	ctx := context.Background()

	aggregate := suite.createTestProduct("Margherita")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertProductCount(1)
	suite.assertVariationCount(len(aggregate.Variations()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_ReturnsProductWithVariations() {
	ctx := context.Background()

	original := suite.createTestProduct("Calabresa")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Description(), retrieved.Description())
	suite.Equal(original.Category(), retrieved.Category())
	suite.Equal(original.IsAvailable(), retrieved.IsAvailable())

	suite.Require().Len(retrieved.Variations(), len(original.Variations()))
	for _, originalVariation := range original.Variations() {
		retrievedVariation, variationErr := retrieved.Variation(originalVariation.ID())
		suite.Require().NoError(variationErr)
		suite.Equal(originalVariation.SizeName(), retrievedVariation.SizeName())
		suite.Equal(originalVariation.Description(), retrievedVariation.Description())
		suite.True(originalVariation.Price().IsEqual(retrievedVariation.Price()))
		suite.Equal(originalVariation.IsAvailable(), retrievedVariation.IsAvailable())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_RenameAndAddVariation() {
	ctx := context.Background()

	aggregate := suite.createTestProduct("Quattro Formaggi")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.SetName("Quattro Formaggi Speciale"))
	newVariation := suite.createTestVariation("Family", "42.00")
	suite.Require().NoError(aggregate.AddVariation(newVariation))

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Quattro Formaggi Speciale", retrieved.Name())
	suite.Len(retrieved.Variations(), 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_RemovedVariationIsDeletedFromDatabase() {
	ctx := context.Background()

	aggregate := suite.createTestProduct("Portuguesa")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	removed := aggregate.Variations()[0].ID()
	suite.Require().NoError(aggregate.RemoveVariation(removed))

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertVariationCount(1)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	_, err = retrieved.Variation(removed)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate, err := product.NewProduct(
		kernel.NewUUID(), "Agua", "Sem gas 500ml", product.CategoryDrink, true, nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, aggregate)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_RemovesProductAndVariations() {
	ctx := context.Background()

	aggregate := suite.createTestProduct("Napolitana")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	err := suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.assertProductCount(0)
	suite.assertVariationCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestProduct creates an available pizza with two variations.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name string) *product.Product {
	variations := []*product.Variation{
		suite.createTestVariation("Medium", "25.50"),
		suite.createTestVariation("Large", "32.00"),
	}

	aggregate, err := product.NewProduct(
		kernel.NewUUID(), name, "Wood-fired pizza", product.CategoryPizza, true, variations)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestVariation(sizeName, price string) *product.Variation {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)

	variation, err := product.NewVariation(
		kernel.NewUUID(), sizeName, "Serves the whole table", money, true)
	suite.Require().NoError(err)

	return variation
}

func (suite *ProductRepositoryIntegrationTestSuite) assertProductCount(expected int) {
	var count int64
	err := suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *ProductRepositoryIntegrationTestSuite) assertVariationCount(expected int) {
	var count int64
	err := suite.db.Model(&productrepo.VariationDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"fornello/internal/adapters/out/postgres/orderrepo"
	"fornello/internal/adapters/out/postgres/userrepo"
	"fornello/internal/core/application/usecases/queries"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_UnrestrictedScope_ReturnsAllOrders() {
	alice := suite.createAndSaveAccount("alice@example.com")
	bob := suite.createAndSaveAccount("bob@example.com")
	first := suite.createAndSaveOrder(alice)
	second := suite.createAndSaveOrder(bob)

	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := suite.indexByID(result)
	suite.Contains(byID, first.ID().String())
	suite.Contains(byID, second.ID().String())
	suite.Equal("alice@example.com", byID[first.ID().String()].User.Email)
	suite.Equal("bob@example.com", byID[second.ID().String()].User.Email)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_RestrictedScope_ReturnsOnlyOwnOrders() {
	alice := suite.createAndSaveAccount("alice@example.com")
	bob := suite.createAndSaveAccount("bob@example.com")
	own := suite.createAndSaveOrder(alice)
	suite.createAndSaveOrder(bob)

	query, err := queries.NewGetOrdersQuery(services.OwnOrdersScope(alice.ID()), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(own.ID().IsEqual(result[0].ID))
	suite.True(alice.ID().IsEqual(result[0].User.ID))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_ReturnsMatchingOrders() {
	alice := suite.createAndSaveAccount("alice@example.com")
	pending := suite.createAndSaveOrder(alice)
	delivered := suite.createAndSaveOrder(alice)
	suite.changeStatus(delivered, order.StatusDelivered)

	status := order.StatusDelivered
	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), &status)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(delivered.ID().IsEqual(result[0].ID))
	suite.Equal("DELIVERED", result[0].Status)
	suite.False(pending.ID().IsEqual(result[0].ID))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AttachesItemsAndDelivery() {
	alice := suite.createAndSaveAccount("alice@example.com")
	saved := suite.createAndSaveOrder(alice)

	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.Require().Len(resp.Items, 1)
	item := saved.Items()[0]
	suite.True(item.ID().IsEqual(resp.Items[0].ID))
	suite.True(item.VariationID().IsEqual(resp.Items[0].VariationID))
	suite.Equal("MEDIA", resp.Items[0].SizeName)
	suite.Equal("42.50", resp.Items[0].UnitPrice)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.Equal("85.00", resp.Amount)
	suite.Equal("PIX", resp.PaymentMethod)

	suite.Equal("Ana Souza", resp.Delivery.ReceiverName)
	suite.Equal("Rua das Flores", resp.Delivery.Address)
	suite.Equal("01000-000", resp.Delivery.ZipCode)
	suite.WithinDuration(saved.CreatedAt(), resp.CreatedAt, time.Second)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func (suite *GetOrdersQueryHandlerTestSuite) createAndSaveAccount(email string) *user.User {
	account, err := user.NewUser(
		kernel.NewUUID(),
		email,
		"$2a$04$storedhash",
		[]user.Role{user.RoleCustomer},
	)
	suite.Require().NoError(err)

	repo := userrepo.NewGormUserRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), account)
	suite.Require().NoError(err)

	return account
}

func (suite *GetOrdersQueryHandlerTestSuite) createAndSaveOrder(owner *user.User) *order.Order {
	unitPrice, err := kernel.MoneyFromString("42.50")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "MEDIA", unitPrice, 2)
	suite.Require().NoError(err)

	delivery, err := order.NewDeliveryData(
		kernel.NewUUID(),
		"Ana Souza",
		"Rua das Flores",
		"100",
		"Apto 12",
		"Centro",
		"01000-000",
		"Sao Paulo",
		"SP",
		"+55 11 91234-5678",
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		owner.ID(),
		[]*order.Item{item},
		order.PaymentMethodPix,
		unitPrice.MulInt(2),
		delivery,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetOrdersQueryHandlerTestSuite) changeStatus(aggregate *order.Order, status order.Status) {
	err := aggregate.ChangeStatus(status)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Update(context.Background(), aggregate)
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) indexByID(orders []queries.OrderResponse) map[string]queries.OrderResponse {
	byID := make(map[string]queries.OrderResponse, len(orders))
	for _, resp := range orders {
		byID[resp.ID.String()] = resp
	}
	return byID
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}

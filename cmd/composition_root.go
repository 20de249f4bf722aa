package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpin "fornello/internal/adapters/in/http"
	"fornello/internal/adapters/out/postgres"
	"fornello/internal/adapters/out/security"
	"fornello/internal/core/application/usecases/commands"
	"fornello/internal/core/application/usecases/queries"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/pkg/errs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application's use cases.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *security.HSTokenProvider
	hasher     *security.BcryptHasher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     security.NewHSTokenProvider(configs.JWTSecret, configs.JWTIssuer),
		hasher:     security.NewBcryptHasher(0),
	}
}

// NewHTTPServer builds the REST server over every command and query handler.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		AddProductVariation:    c.CreateAddProductVariationCommandHandler(),
		UpdateProduct:          c.CreateUpdateProductCommandHandler(),
		UpdateProductVariation: c.CreateUpdateProductVariationCommandHandler(),
		DeleteProduct:          c.CreateDeleteProductCommandHandler(),
		DeleteProductVariation: c.CreateDeleteProductVariationCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:            c.CreateDeleteOrderCommandHandler(),
		RegisterUser:           c.CreateRegisterUserCommandHandler(),
		LoginUser:              c.CreateLoginUserCommandHandler(),
		DeleteUser:             c.CreateDeleteUserCommandHandler(),

		GetProducts:    c.CreateGetProductsQueryHandler(),
		GetProductByID: c.CreateGetProductByIDQueryHandler(),
		GetOrders:      c.CreateGetOrdersQueryHandler(),
		GetOrderByID:   c.CreateGetOrderByIDQueryHandler(),
		GetUsers:       c.CreateGetUsersQueryHandler(),
		GetUserByID:    c.CreateGetUserByIDQueryHandler(),
	}

	return httpin.NewServer(handlers, c.tokens, c.CallerAccounts())
}

// CallerAccounts exposes the account lookup the authentication middleware
// needs. Reads run outside any transaction.
func (c *CompositionRoot) CallerAccounts() httpin.CallerAccounts {
	return c.uowFactory.Create().UserRepository()
}

// SeedAdministrator registers the bootstrap administrator account. A conflict
// means a previous boot already seeded it.
func (c *CompositionRoot) SeedAdministrator(ctx context.Context, email, password string) error {
	logger := slog.Default().With("component", "admin_seed")

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), email, password, user.RoleAdministrator)
	if err != nil {
		return err
	}

	handler := c.CreateRegisterUserCommandHandler()
	if err := handler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			logger.InfoContext(ctx, "Administrator account already present", "email", email)
			return nil
		}
		return err
	}

	logger.InfoContext(ctx, "Administrator account created", "email", email)
	return nil
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAddProductVariationCommandHandler() commands.AddProductVariationCommandHandler {
	return commands.NewAddProductVariationCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductVariationCommandHandler() commands.UpdateProductVariationCommandHandler {
	return commands.NewUpdateProductVariationCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductVariationCommandHandler() commands.DeleteProductVariationCommandHandler {
	return commands.NewDeleteProductVariationCommandHandler(c.productOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.productOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductByIDQueryHandler() queries.GetProductByIDQueryHandler {
	return queries.NewGetProductByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productOrderUoWFactory() commands.ProductOrderUoWFactory {
	return FuncProductOrderUoWFactory(func() commands.ProductOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userOrderUoWFactory() commands.UserOrderUoWFactory {
	return FuncUserOrderUoWFactory(func() commands.UserOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductOrderUoWFactory func() commands.ProductOrderUoW

func (f FuncProductOrderUoWFactory) Create() commands.ProductOrderUoW {
	return f()
}

type FuncUserOrderUoWFactory func() commands.UserOrderUoW

func (f FuncUserOrderUoWFactory) Create() commands.UserOrderUoW {
	return f()
}

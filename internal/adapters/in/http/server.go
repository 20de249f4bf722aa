// Package http is the inbound REST adapter. It binds requests into commands
// and queries, runs the bearer-token middleware and renders read models as
// JSON. No business rules live here.
package http

import (
	"net/http"

	"fornello/internal/core/application/usecases/commands"
	"fornello/internal/core/application/usecases/queries"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
	"fornello/internal/core/domain/model/product"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/core/domain/services"
	"fornello/internal/core/ports"
	"fornello/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server routes to.
type Handlers struct {
	CreateProduct          commands.CreateProductCommandHandler
	AddProductVariation    commands.AddProductVariationCommandHandler
	UpdateProduct          commands.UpdateProductCommandHandler
	UpdateProductVariation commands.UpdateProductVariationCommandHandler
	DeleteProduct          commands.DeleteProductCommandHandler
	DeleteProductVariation commands.DeleteProductVariationCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ChangeOrderStatus      commands.ChangeOrderStatusCommandHandler
	DeleteOrder            commands.DeleteOrderCommandHandler
	RegisterUser           commands.RegisterUserCommandHandler
	LoginUser              commands.LoginUserCommandHandler
	DeleteUser             commands.DeleteUserCommandHandler

	GetProducts    queries.GetProductsQueryHandler
	GetProductByID queries.GetProductByIDQueryHandler
	GetOrders      queries.GetOrdersQueryHandler
	GetOrderByID   queries.GetOrderByIDQueryHandler
	GetUsers       queries.GetUsersQueryHandler
	GetUserByID    queries.GetUserByIDQueryHandler
}

// Server routes HTTP requests to the application's use cases.
type Server struct {
	handlers Handlers
	policy   services.OrderAccessPolicy
	auth     authMiddleware
}

// NewServer creates an HTTP server over the given handlers. The token
// provider and account lookup feed the authentication middleware.
func NewServer(handlers Handlers, tokens ports.TokenProvider, accounts CallerAccounts) *Server {
	return &Server{
		handlers: handlers,
		policy:   services.NewOrderAccessPolicy(),
		auth:     newAuthMiddleware(tokens, accounts),
	}
}

// RegisterRoutes attaches every route to the echo instance. Login and
// customer registration are public; catalog reads and ordering require a
// token; everything else is administrator-only.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/users/login", s.Login)
	e.POST("/users/customers", s.RegisterCustomer)

	authenticated := e.Group("", s.auth.Authenticate)
	authenticated.GET("/products", s.GetProducts)
	authenticated.GET("/products/:productId", s.GetProductByID)
	authenticated.GET("/orders", s.GetOrders)
	authenticated.GET("/orders/:orderId", s.GetOrderByID)
	authenticated.GET("/orders/status/:statusName", s.GetOrdersByStatus)
	authenticated.POST("/orders", s.CreateOrder)

	admin := authenticated.Group("", s.auth.RequireAdministrator)
	admin.POST("/products", s.CreateProduct)
	admin.POST("/products/:productId/variation", s.AddProductVariation)
	admin.PATCH("/products/:productId", s.UpdateProduct)
	admin.PUT("/products/:productId/variation/:productVariationId", s.UpdateProductVariation)
	admin.DELETE("/products/:productId", s.DeleteProduct)
	admin.DELETE("/products/:productId/variation/:productVariationId", s.DeleteProductVariation)
	admin.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	admin.DELETE("/orders/:orderId", s.DeleteOrder)
	admin.GET("/users", s.GetUsers)
	admin.GET("/users/:userId", s.GetUserByID)
	admin.DELETE("/users/:userId", s.DeleteUser)
}

// Login handles POST /users/login - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginUserCommand(request.Email, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.handlers.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// RegisterCustomer handles POST /users/customers - registers a customer account.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), request.Email, request.Password, user.RoleCustomer)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProducts handles GET /products - lists the whole catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(
		ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productListJSON(products))
}

// GetProductByID handles GET /products/{productId}.
func (s *Server) GetProductByID(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithProduct(ctx, productID, http.StatusOK)
}

// CreateProduct handles POST /products - registers a catalog product with
// its initial variations and returns the created product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	category, err := product.ParseCategory(request.Category)
	if err != nil {
		return writeError(ctx, err)
	}

	variations := make([]commands.VariationData, 0, len(request.Variations))
	for _, v := range request.Variations {
		data, dataErr := variationDataFromRequest(v)
		if dataErr != nil {
			return writeError(ctx, dataErr)
		}
		variations = append(variations, data)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, request.Name, request.Description, category, request.Available, variations)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithProduct(ctx, productID, http.StatusCreated)
}

// AddProductVariation handles POST /products/{productId}/variation.
func (s *Server) AddProductVariation(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request CreateVariationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	data, err := variationDataFromRequest(request)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddProductVariationCommand(productID, data)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AddProductVariation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithProduct(ctx, productID, http.StatusOK)
}

// UpdateProduct handles PATCH /products/{productId} - partial product update.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, request.Name, request.Description, request.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithProduct(ctx, productID, http.StatusOK)
}

// UpdateProductVariation handles PUT /products/{productId}/variation/{productVariationId}.
func (s *Server) UpdateProductVariation(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	variationID, err := pathUUID(ctx, "productVariationId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateVariationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	var price *kernel.Money
	if request.Price != nil {
		money, moneyErr := kernel.NewMoney(*request.Price)
		if moneyErr != nil {
			return writeError(ctx, moneyErr)
		}
		price = &money
	}

	cmd, err := commands.NewUpdateProductVariationCommand(
		productID, variationID, request.SizeName, request.Description, price, request.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateProductVariation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithProduct(ctx, productID, http.StatusOK)
}

// DeleteProduct handles DELETE /products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProductVariation handles DELETE /products/{productId}/variation/{productVariationId}.
func (s *Server) DeleteProductVariation(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	variationID, err := pathUUID(ctx, "productVariationId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductVariationCommand(productID, variationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteProductVariation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /orders - places an order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "missing bearer token")
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	paymentMethod, err := order.ParsePaymentMethod(request.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.OrderItemData, 0, len(request.Items))
	for _, line := range request.Items {
		data, lineErr := orderItemDataFromRequest(line)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		items = append(items, data)
	}

	delivery, err := order.NewDeliveryData(
		kernel.NewUUID(),
		request.DeliveryData.ReceiverName,
		request.DeliveryData.Address,
		request.DeliveryData.Number,
		request.DeliveryData.Complement,
		request.DeliveryData.District,
		request.DeliveryData.ZipCode,
		request.DeliveryData.City,
		request.DeliveryData.State,
		request.DeliveryData.Phone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, caller.ID, items, paymentMethod, delivery)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	scope := s.policy.ScopeFor(caller.ID, caller.Roles)
	return s.respondWithOrder(ctx, orderID, scope, http.StatusCreated)
}

// GetOrders handles GET /orders - lists the orders the caller may see.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.listOrders(ctx, nil)
}

// GetOrdersByStatus handles GET /orders/status/{statusName}.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.ParseStatus(ctx.Param("statusName"))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.listOrders(ctx, &status)
}

// GetOrderByID handles GET /orders/{orderId}. A customer asking for someone
// else's order gets the same not-found answer as for a missing id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "missing bearer token")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	scope := s.policy.ScopeFor(caller.ID, caller.Roles)
	return s.respondWithOrder(ctx, orderID, scope, http.StatusOK)
}

// ChangeOrderStatus handles PATCH /orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, services.UnrestrictedOrderScope(), http.StatusOK)
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /users - lists every account.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.handlers.GetUsers.Handle(
		ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userListJSON(users))
}

// GetUserByID handles GET /users/{userId}.
func (s *Server) GetUserByID(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userJSON(account))
}

// DeleteUser handles DELETE /users/{userId}.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listOrders(ctx echo.Context, status *order.Status) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return writeUnauthorized(ctx, "missing bearer token")
	}

	scope := s.policy.ScopeFor(caller.ID, caller.Roles)
	query, err := queries.NewGetOrdersQuery(scope, status)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListJSON(orders))
}

func (s *Server) respondWithProduct(ctx echo.Context, productID kernel.UUID, code int) error {
	query, err := queries.NewGetProductByIDQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetProductByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(code, productJSON(response))
}

func (s *Server) respondWithOrder(
	ctx echo.Context,
	orderID kernel.UUID,
	scope services.OrderScope,
	code int,
) error {
	query, err := queries.NewGetOrderByIDQuery(orderID, scope)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(code, orderJSON(response))
}

func variationDataFromRequest(request CreateVariationRequest) (commands.VariationData, error) {
	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return commands.VariationData{}, err
	}

	return commands.NewVariationData(
		kernel.NewUUID(), request.SizeName, request.Description, price, request.Available)
}

func orderItemDataFromRequest(request CreateOrderItemRequest) (commands.OrderItemData, error) {
	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return commands.OrderItemData{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	variationID, err := kernel.UUIDFromString(request.VariationID)
	if err != nil {
		return commands.OrderItemData{}, errs.NewValueIsInvalidErrorWithCause("productVariationId", err)
	}

	return commands.NewOrderItemData(productID, variationID, request.Quantity)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// Package http exposes the application over a REST API. Handlers translate
// between JSON payloads and the command/query layer; no business logic lives
// here.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// SupportContact is the static support channel configuration rendered by the
// contact endpoint.
type SupportContact struct {
	WhatsAppNumber string
	PhoneNumber    string
	Email          string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	advanceOrderHandler         commands.AdvanceOrderCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	createDriverHandler         commands.CreateDriverCommandHandler
	updateDriverStatusHandler   commands.UpdateDriverStatusCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	updateTrackingStatusHandler commands.UpdateTrackingStatusCommandHandler

	// Query handlers
	getUserOrdersHandler    queries.GetUserOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getDriversHandler       queries.GetDriversQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	getOrderFlowHandler     queries.GetOrderFlowQueryHandler

	users      ports.UserRepository
	subscriber ports.TrackingSubscriber
	tokens     *TokenService
	support    SupportContact
	logger     *slog.Logger
}

// ServerParams bundles the dependencies for NewServer.
type ServerParams struct {
	RegisterUserHandler         commands.RegisterUserCommandHandler
	CreateOrderHandler          commands.CreateOrderCommandHandler
	AdvanceOrderHandler         commands.AdvanceOrderCommandHandler
	AssignDriverHandler         commands.AssignDriverCommandHandler
	CreateDriverHandler         commands.CreateDriverCommandHandler
	UpdateDriverStatusHandler   commands.UpdateDriverStatusCommandHandler
	UpdateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	UpdateTrackingStatusHandler commands.UpdateTrackingStatusCommandHandler

	GetUserOrdersHandler    queries.GetUserOrdersQueryHandler
	GetOrderHandler         queries.GetOrderQueryHandler
	GetDriversHandler       queries.GetDriversQueryHandler
	GetOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	GetOrderFlowHandler     queries.GetOrderFlowQueryHandler

	Users      ports.UserRepository
	Subscriber ports.TrackingSubscriber
	Tokens     *TokenService
	Support    SupportContact
	Logger     *slog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(params ServerParams) *Server {
	return &Server{
		registerUserHandler:         params.RegisterUserHandler,
		createOrderHandler:          params.CreateOrderHandler,
		advanceOrderHandler:         params.AdvanceOrderHandler,
		assignDriverHandler:         params.AssignDriverHandler,
		createDriverHandler:         params.CreateDriverHandler,
		updateDriverStatusHandler:   params.UpdateDriverStatusHandler,
		updateDriverLocationHandler: params.UpdateDriverLocationHandler,
		updateTrackingStatusHandler: params.UpdateTrackingStatusHandler,
		getUserOrdersHandler:        params.GetUserOrdersHandler,
		getOrderHandler:             params.GetOrderHandler,
		getDriversHandler:           params.GetDriversHandler,
		getOrderTrackingHandler:     params.GetOrderTrackingHandler,
		getOrderFlowHandler:         params.GetOrderFlowHandler,
		users:                       params.Users,
		subscriber:                  params.Subscriber,
		tokens:                      params.Tokens,
		support:                     params.Support,
		logger:                      params.Logger.With("component", "http"),
	}
}

// RegisterRoutes wires all endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/support/contact", s.GetSupportContact)

	authed := api.Group("", AuthRequired(s.tokens))
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/status", s.AdvanceOrder)
	authed.GET("/orders/:id/flow", s.GetOrderFlow)
	authed.POST("/orders/:id/assign", s.AssignDriver)
	authed.GET("/orders/:id/tracking", s.GetOrderTracking)
	authed.GET("/orders/:id/tracking/stream", s.StreamOrderTracking)
	authed.POST("/orders/:id/tracking/status", s.UpdateTrackingStatus)
	authed.POST("/drivers", s.CreateDriver)
	authed.GET("/drivers", s.GetDrivers)
	authed.POST("/drivers/:id/status", s.UpdateDriverStatus)
	authed.POST("/drivers/:id/location", s.UpdateDriverLocation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isEmailTaken(err) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Email already registered",
			})
		}
		return s.internalError(ctx, "register account", err)
	}

	account, err := s.users.Get(ctx.Request().Context(), userID)
	if err != nil {
		return s.internalError(ctx, "load registered account", err)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return s.internalError(ctx, "issue token", err)
	}

	return ctx.JSON(http.StatusCreated, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    account.ID().String(),
			Name:  account.Name(),
			Email: account.Email(),
			Phone: account.Phone(),
		},
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	invalidCredentials := func() error {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	account, err := s.users.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		return invalidCredentials()
	}

	if err = bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash()), []byte(req.Password)); err != nil {
		return invalidCredentials()
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return s.internalError(ctx, "issue token", err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    account.ID().String(),
			Name:  account.Name(),
			Email: account.Email(),
			Phone: account.Phone(),
		},
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	total, err := kernel.NewMoney(req.TotalCents)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, req.Category, req.Address,
		req.Items, total, req.PickupTime, req.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.internalError(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders - the current user's history.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "list orders", err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Order not found")
		}
		return s.internalError(ctx, "load order", err)
	}

	if !result.UserID.IsEqual(userID) {
		return notFound(ctx, "Order not found")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// AdvanceOrder handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AdvanceOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Order not found")
		}
		return s.internalError(ctx, "advance order", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, commands.ErrOrderAlreadyAssigned):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order already has a driver",
		})
	case errors.Is(err, commands.ErrNoDriverAvailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "No driver is available right now",
		})
	case isNotFound(err):
		return notFound(ctx, "Order not found")
	default:
		return s.internalError(ctx, "assign driver", err)
	}
}

// GetOrderFlow handles GET /api/v1/orders/:id/flow.
func (s *Server) GetOrderFlow(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderFlowQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderFlowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Order not found")
		}
		return s.internalError(ctx, "load order flow", err)
	}

	steps := make([]FlowStepResponse, 0, len(result.Steps))
	for _, step := range result.Steps {
		steps = append(steps, FlowStepResponse{
			Status:        step.Status,
			Title:         step.Title,
			Description:   step.Description,
			EstimatedTime: step.EstimatedTime,
			Actions:       step.Actions,
			Completed:     step.Completed,
			Current:       step.Current,
		})
	}

	return ctx.JSON(http.StatusOK, OrderFlowResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status,
		Steps:   steps,
	})
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, "No tracking for this order yet")
		}
		return s.internalError(ctx, "load tracking", err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingID:            result.TrackingID.String(),
		OrderID:               result.OrderID.String(),
		Status:                result.Status,
		PickupAddress:         result.PickupAddress,
		DropoffAddress:        result.DropoffAddress,
		DriverName:            result.DriverName,
		DriverPhone:           result.DriverPhone,
		DriverVehicleType:     result.DriverVehicleType,
		DriverVehicleNumber:   result.DriverVehicleNumber,
		DriverRating:          result.DriverRating,
		CurrentLatitude:       result.CurrentLatitude,
		CurrentLongitude:      result.CurrentLongitude,
		LocationRecordedAt:    result.LocationRecordedAt,
		EstimatedPickupTime:   result.EstimatedPickupTime,
		EstimatedDeliveryTime: result.EstimatedDeliveryTime,
		ActualPickupTime:      result.ActualPickupTime,
		ActualDeliveryTime:    result.ActualDeliveryTime,
	})
}

// UpdateTrackingStatus handles POST /api/v1/orders/:id/tracking/status.
func (s *Server) UpdateTrackingStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateTrackingStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTrackingStatusCommand(orderID, tracking.Status(req.Status))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateTrackingStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "No tracking for this order yet")
		}
		return s.internalError(ctx, "update tracking status", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.Name, req.Phone, req.Email,
		driver.VehicleType(req.VehicleType), req.VehicleNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.internalError(ctx, "create driver", err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": driverID.String()})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	drivers, err := s.getDriversHandler.Handle(
		ctx.Request().Context(), queries.NewGetDriversQuery(availableOnly))
	if err != nil {
		return s.internalError(ctx, "list drivers", err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			ID:              d.ID.String(),
			Name:            d.Name,
			Phone:           d.Phone,
			VehicleType:     d.VehicleType,
			VehicleNumber:   d.VehicleNumber,
			Rating:          d.Rating,
			TotalDeliveries: d.TotalDeliveries,
			Status:          d.Status,
			LastLatitude:    d.LastLatitude,
			LastLongitude:   d.LastLongitude,
			LastReportedAt:  d.LastReportedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDriverStatus handles POST /api/v1/drivers/:id/status.
func (s *Server) UpdateDriverStatus(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateDriverStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverStatusCommand(driverID, driver.Status(req.Status))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateDriverStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Driver not found")
		}
		return s.internalError(ctx, "update driver status", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverLocation handles POST /api/v1/drivers/:id/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateDriverLocationRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		parsed, parseErr := kernel.UUIDFromString(req.OrderID)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		orderID = &parsed
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, point, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Driver not found")
		}
		return s.internalError(ctx, "update driver location", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSupportContact handles GET /api/v1/support/contact.
func (s *Server) GetSupportContact(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SupportContactResponse{
		WhatsAppURL: "https://wa.me/" + url.PathEscape(s.support.WhatsAppNumber),
		PhoneURL:    "tel:" + s.support.PhoneNumber,
		Email:       s.support.Email,
	})
}

func toOrderResponse(o queries.GetUserOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:         o.ID.String(),
		Category:   o.Category,
		Address:    o.Address,
		Items:      o.Items,
		TotalCents: o.TotalAmount,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		PickupTime: o.PickupTime,
		Notes:      o.Notes,
	}
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}
	return nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func (s *Server) internalError(ctx echo.Context, action string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		"action", action, "error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Something went wrong, please try again",
	})
}

func isNotFound(err error) bool {
	var notFoundErr *errs.ObjectNotFoundError
	return errors.As(err, &notFoundErr)
}

func isEmailTaken(err error) bool {
	return errors.Is(err, ports.ErrEmailTaken)
}

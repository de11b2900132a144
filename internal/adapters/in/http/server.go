package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// actorHeader carries the identity of the caller. Requests without it, or
// with an identity that cannot be parsed, are rejected before any use case
// runs.
const actorHeader = "X-Actor-ID"

// Server handles HTTP requests for the storefront API.
// It coordinates between HTTP handlers and application use cases, and
// resolves the calling actor for endpoints that require a permission check
// before reading.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	transitionHandler       commands.RequestOrderTransitionCommandHandler
	grantStoreAccessHandler commands.GrantStoreAccessCommandHandler

	// Query handlers
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler
	getStoreStatsHandler  queries.GetStoreStatsQueryHandler

	actors ports.ActorRepository
}

// NewServer creates a new HTTP server with the required command and query
// handlers and an actor repository for permission checks on read endpoints.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionHandler commands.RequestOrderTransitionCommandHandler,
	grantStoreAccessHandler commands.GrantStoreAccessCommandHandler,
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler,
	getStoreStatsHandler queries.GetStoreStatsQueryHandler,
	actors ports.ActorRepository,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		transitionHandler:       transitionHandler,
		grantStoreAccessHandler: grantStoreAccessHandler,
		getStoreOrdersHandler:   getStoreOrdersHandler,
		getStoreStatsHandler:    getStoreStatsHandler,
		actors:                  actors,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/transitions", s.RequestTransition)
	api.GET("/stores/:storeID/orders", s.GetStoreOrders)
	api.GET("/stores/:storeID/stats", s.GetStoreStats)
	api.POST("/stores/:storeID/grants", s.GrantStoreAccess)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// The calling actor is the customer; the order starts in Pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var newOrder NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(newOrder.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}

	lineItems := make([]order.LineItem, 0, len(newOrder.LineItems))
	for _, item := range newOrder.LineItems {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id")
		}

		unitPrice, itemErr := decimal.NewFromString(item.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid unit price")
		}

		lineItem, itemErr := order.NewLineItem(productID, item.Quantity, unitPrice, item.Variant)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}

		lineItems = append(lineItems, lineItem)
	}

	total, err := decimal.NewFromString(newOrder.Total)
	if err != nil {
		return badRequest(ctx, "Invalid total")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, storeID, customerID, lineItems, total,
		order.Metadata{
			PaymentMethod:   newOrder.PaymentMethod,
			ShippingAddress: newOrder.ShippingAddress,
			Notes:           newOrder.Notes,
		})
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrValueIsInvalid) || errors.Is(handleErr, errs.ErrValueIsOutOfRange) {
			return badRequest(ctx, "Invalid order data: "+handleErr.Error())
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// RequestTransition handles POST /api/v1/orders/:orderID/transitions - moves
// an order to a new status on behalf of the calling actor.
//
// Rejections by the lifecycle rules are rendered, not treated as failures:
// an illegal move answers 409, a caller without authority over the order's
// store answers 403. A lost concurrent update also answers 409.
func (s *Server) RequestTransition(ctx echo.Context) error {
	requestorID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var newTransition NewTransition
	if err = ctx.Bind(&newTransition); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(newTransition.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+newTransition.Target)
	}

	cmd, err := commands.NewRequestOrderTransitionCommand(orderID, requestorID, target, newTransition.TrackingCode)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(err, errs.ErrConflict):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order was modified concurrently, retry the request",
			})
		default:
			return internalError(ctx, "Failed to process transition")
		}
	}

	if !result.Accepted() {
		status := http.StatusConflict
		if result.Outcome() == services.TransitionUnauthorized {
			status = http.StatusForbidden
		}
		return ctx.JSON(status, TransitionRejected{
			Outcome: result.Outcome().String(),
			Reason:  result.Reason(),
		})
	}

	return ctx.JSON(http.StatusOK, OrderStatus{
		ID:     orderID.String(),
		Status: result.Order().Status().String(),
	})
}

// GetStoreOrders handles GET /api/v1/stores/:storeID/orders - lists a store's
// orders, newest first. The calling actor must be able to view the store.
func (s *Server) GetStoreOrders(ctx echo.Context) error {
	storeID, viewer, ok, err := s.resolveStoreViewer(ctx)
	if !ok {
		return err
	}

	if !viewer.CanViewStore(storeID) {
		return forbidden(ctx, "Actor cannot view the store")
	}

	query, err := queries.NewGetStoreOrdersQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}

	orders, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]StoreOrder, len(orders))
	for i, storeOrder := range orders {
		response[i] = StoreOrder{
			ID:         storeOrder.ID.String(),
			CustomerID: storeOrder.CustomerID.String(),
			Status:     storeOrder.Status,
			Total:      storeOrder.Total,
			CreatedAt:  storeOrder.CreatedAt,
			UpdatedAt:  storeOrder.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStoreStats handles GET /api/v1/stores/:storeID/stats - returns a store's
// aggregated order statistics. The calling actor must be able to view the store.
func (s *Server) GetStoreStats(ctx echo.Context) error {
	storeID, viewer, ok, err := s.resolveStoreViewer(ctx)
	if !ok {
		return err
	}

	if !viewer.CanViewStore(storeID) {
		return forbidden(ctx, "Actor cannot view the store")
	}

	query, err := queries.NewGetStoreStatsQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}

	stats, err := s.getStoreStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve statistics")
	}

	return ctx.JSON(http.StatusOK, StoreStats{
		TotalOrders:     stats.TotalOrders,
		CountByStatus:   stats.CountByStatus,
		Revenue:         stats.Revenue,
		UniqueCustomers: stats.UniqueCustomers,
	})
}

// GrantStoreAccess handles POST /api/v1/stores/:storeID/grants - gives an
// actor a store-scoped authority level. The calling actor is the grantor.
func (s *Server) GrantStoreAccess(ctx echo.Context) error {
	grantorID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	storeID, err := kernel.UUIDFromString(ctx.Param("storeID"))
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}

	var newGrant NewGrant
	if err = ctx.Bind(&newGrant); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	granteeID, err := kernel.UUIDFromString(newGrant.GranteeID)
	if err != nil {
		return badRequest(ctx, "Invalid grantee id")
	}

	level, err := access.LevelFromString(newGrant.Level)
	if err != nil {
		return badRequest(ctx, "Invalid level: "+newGrant.Level)
	}

	cmd, err := commands.NewGrantStoreAccessCommand(grantorID, granteeID, storeID, level)
	if err != nil {
		return badRequest(ctx, "Invalid grant request: "+err.Error())
	}

	if handleErr := s.grantStoreAccessHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrStoreAccessDenied):
			return forbidden(ctx, "Actor cannot manage access to the store")
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return notFound(ctx, "Grantee not found")
		default:
			return internalError(ctx, "Failed to grant access")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveStoreViewer parses the store id and loads the calling actor.
// An unknown actor resolves to nil, which fails every permission check.
//
// On a rejection it writes the error response itself and reports ok=false;
// callers must stop and return err without writing anything further. The
// write result cannot double as the signal: ctx.JSON returns nil on a
// successful write, which would read as "keep going".
func (s *Server) resolveStoreViewer(ctx echo.Context) (kernel.UUID, *access.Actor, bool, error) {
	viewerID, err := actorID(ctx)
	if err != nil {
		return kernel.UUID{}, nil, false, unauthorized(ctx)
	}

	storeID, err := kernel.UUIDFromString(ctx.Param("storeID"))
	if err != nil {
		return kernel.UUID{}, nil, false, badRequest(ctx, "Invalid store id")
	}

	viewer, err := s.actors.Get(ctx.Request().Context(), viewerID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, nil, false, internalError(ctx, "Failed to resolve actor")
	}

	return storeID, viewer, true, nil
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(actorHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid " + actorHeader + " header",
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}

// Package http exposes the order lifecycle over a REST API built on echo.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		updateOrderHandler:       updateOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOwnerOrdersHandler:    getOwnerOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/owners/:owner_id/orders", s.GetOwnerOrders)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// ErrorResponse is the wire format for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one order line as submitted by clients. The unit price
// travels as a decimal string to avoid float rounding on the wire.
type ItemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OwnerID string        `json:"owner_id"`
	Items   []ItemRequest `json:"items"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id. Absent fields
// leave the corresponding part of the order untouched.
type UpdateOrderRequest struct {
	Status *string       `json:"status,omitempty"`
	Items  []ItemRequest `json:"items,omitempty"`
}

// ItemResponse is one order line as returned to clients.
type ItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	Status      string         `json:"status"`
	TotalAmount string         `json:"total_amount"`
	Version     int            `json:"version"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Items       []ItemResponse `json:"items"`
}

// DeleteOrderResponse reports whether a DELETE actually removed an order.
type DeleteOrderResponse struct {
	Removed bool `json:"removed"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid owner_id: "+err.Error())
	}

	specs, err := toItemSpecs(req.Items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), ownerID, specs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid status: "+statusErr.Error())
		}
		status = &parsed
	}

	var specs []order.ItemSpec
	if req.Items != nil {
		specs, err = toItemSpecs(req.Items)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid items: "+err.Error())
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, specs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Deletion is idempotent and
// reports whether an order was actually removed.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	removed, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteOrderResponse{Removed: removed})
}

// GetOrders handles GET /api/v1/orders with optional status, owner_id and
// limit query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid status: "+err.Error())
		}
		statusFilter = &parsed
	}

	var ownerFilter *kernel.UUID
	if raw := ctx.QueryParam("owner_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid owner_id: "+err.Error())
		}
		ownerFilter = &parsed
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetAllOrdersQuery(statusFilter, ownerFilter, limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, fromProjections(orders))
}

// GetOwnerOrders handles GET /api/v1/owners/:owner_id/orders.
func (s *Server) GetOwnerOrders(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("owner_id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid owner_id: "+err.Error())
	}

	query, err := queries.NewGetOwnerOrdersQuery(ownerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	orders, err := s.getOwnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, fromProjections(orders))
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// domainErrorJSON maps domain and persistence errors onto HTTP statuses:
// unknown orders become 404, illegal lifecycle transitions 422, optimistic
// concurrency conflicts 409 and validation failures 400.
func domainErrorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func toItemSpecs(items []ItemRequest) ([]order.ItemSpec, error) {
	specs := make([]order.ItemSpec, 0, len(items))
	for _, item := range items {
		unitPrice, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		specs = append(specs, order.ItemSpec{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}
	return specs, nil
}

func fromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID().String(),
		OwnerID:     aggregate.OwnerID().String(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().String(),
		Version:     aggregate.Version(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       items,
	}
}

func fromProjections(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))
	for _, projection := range orders {
		items := make([]ItemResponse, 0, len(projection.Items))
		for _, item := range projection.Items {
			items = append(items, ItemResponse{
				ID:          item.ID.String(),
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice.String(),
				Subtotal:    item.Subtotal.String(),
			})
		}

		response = append(response, OrderResponse{
			ID:          projection.ID.String(),
			OwnerID:     projection.OwnerID.String(),
			Status:      projection.Status,
			TotalAmount: projection.TotalAmount.String(),
			Version:     projection.Version,
			CreatedAt:   projection.CreatedAt,
			UpdatedAt:   projection.UpdatedAt,
			Items:       items,
		})
	}
	return response
}

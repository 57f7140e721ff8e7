// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries, and the error taxonomy into status codes.
//
// Actor identity arrives in trusted headers placed by an upstream gateway:
// X-User-ID for sender accounts, X-Agent-ID for delivery agents. Both
// not-found and permission-denied map to 404 so callers cannot probe for
// foreign orders.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID  = "X-User-ID"
	headerAgentID = "X-Agent-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	updateStatusByAgentHandler  commands.UpdateOrderStatusByAgentCommandHandler
	updateStatusBySenderHandler commands.UpdateOrderStatusBySenderCommandHandler
	assignAgentHandler          commands.AssignDeliveryAgentCommandHandler

	getSenderOrdersHandler queries.GetSenderOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusByAgentHandler commands.UpdateOrderStatusByAgentCommandHandler,
	updateStatusBySenderHandler commands.UpdateOrderStatusBySenderCommandHandler,
	assignAgentHandler commands.AssignDeliveryAgentCommandHandler,
	getSenderOrdersHandler queries.GetSenderOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateStatusByAgentHandler:  updateStatusByAgentHandler,
		updateStatusBySenderHandler: updateStatusBySenderHandler,
		assignAgentHandler:          assignAgentHandler,
		getSenderOrdersHandler:      getSenderOrdersHandler,
		logger:                      logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetSenderOrders)
	e.PUT("/api/v1/orders/:id/status", s.UpdateOrderStatus)
	e.PUT("/api/v1/orders/:id/agent", s.AssignAgent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders. The sender is the X-User-ID actor.
func (s *Server) CreateOrder(ctx echo.Context) error {
	senderID, ok := actorID(ctx, headerUserID)
	if !ok {
		return badRequest(ctx, "missing or invalid "+headerUserID+" header")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	item, err := order.NewItemInfo(
		req.Item.Length, req.Item.Width, req.Item.Height,
		req.Item.Weight, req.Item.Quantity, req.Item.Remark,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	start, err := kernel.NewCoordinates(req.Start.Latitude, req.Start.Longitude, req.Start.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	end, err := kernel.NewCoordinates(req.End.Latitude, req.End.Longitude, req.End.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	delivery, err := order.NewDeliveryInfo(req.Delivery.Distance, req.Delivery.Weight, req.Delivery.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		senderID,
		req.ReceiverAccountID,
		req.ReceiverName,
		req.ReceiverPhone,
		item, start, end, delivery,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetSenderOrders handles GET /api/v1/orders. Lists the X-User-ID actor's
// live orders.
func (s *Server) GetSenderOrders(ctx echo.Context) error {
	senderID, ok := actorID(ctx, headerUserID)
	if !ok {
		return badRequest(ctx, "missing or invalid "+headerUserID+" header")
	}

	query, err := queries.NewGetSenderOrdersQuery(senderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getSenderOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderListItem, len(orders))
	for i, o := range orders {
		response[i] = OrderListItem{
			ID:             o.ID,
			TrackingNumber: o.TrackingNumber,
			Status:         o.Status,
			ReceiverName:   o.ReceiverName,
			ReceiverPhone:  o.ReceiverPhone,
			AgentID:        o.AgentID,
			EndAddress:     o.EndAddress,
			Price:          o.DeliveryPrice,
			ModifiedAt:     o.ModifiedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status. The acting role
// comes from the headers: X-Agent-ID drives the agent transition table,
// otherwise X-User-ID drives the sender table.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, ok := parseStatus(req.Status)
	if !ok {
		return badRequest(ctx, "unrecognized status: "+req.Status)
	}

	if agentID, isAgent := actorID(ctx, headerAgentID); isAgent {
		cmd, cmdErr := commands.NewUpdateOrderStatusByAgentCommand(agentID, orderID, newStatus)
		if cmdErr != nil {
			return errorResponse(ctx, cmdErr)
		}

		updated, handleErr := s.updateStatusByAgentHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return errorResponse(ctx, handleErr)
		}

		return ctx.JSON(http.StatusOK, orderToResponse(updated))
	}

	senderID, ok := actorID(ctx, headerUserID)
	if !ok {
		return badRequest(ctx, "missing or invalid actor header")
	}

	cmd, err := commands.NewUpdateOrderStatusBySenderCommand(orderID, newStatus, senderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateStatusBySenderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AssignAgent handles PUT /api/v1/orders/:id/agent. Binds the X-Agent-ID
// actor to the order and forces it into Accepted.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	agentID, ok := actorID(ctx, headerAgentID)
	if !ok {
		return badRequest(ctx, "missing or invalid "+headerAgentID+" header")
	}

	cmd, err := commands.NewAssignDeliveryAgentCommand(orderID, agentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "agent assignment failed",
			"order_id", orderID,
			"agent_id", agentID,
			"error", err,
		)
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorID reads a numeric actor id from a trusted header. Returns false
// when the header is absent or not a positive integer.
func actorID(ctx echo.Context, header string) (int64, bool) {
	raw := ctx.Request().Header.Get(header)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps the error taxonomy onto HTTP status codes. Anything
// unrecognized is a 500 with no internal detail exposed.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "order or participant not found",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValidationFailed):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

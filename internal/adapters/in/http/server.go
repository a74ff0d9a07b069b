// Package http exposes the order lifecycle over an Echo server.
// The adapter translates requests into commands and queries, maps use-case
// errors onto the JSON envelope, and gates staff and admin operations behind
// their passphrases. No business rule lives here.
package http

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	approveOrderHandler  commands.ApproveOrderCommandHandler
	declineOrderHandler  commands.DeclineOrderCommandHandler
	markPreparedHandler  commands.MarkPreparedCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	clearOrdersHandler   commands.ClearOrdersCommandHandler

	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler
	ordersByTokenHandler  queries.GetOrdersByTokenQueryHandler
	groupProgressHandler  queries.GetGroupProgressQueryHandler
	summaryStatsHandler   queries.GetSummaryStatsQueryHandler
	snapshotHandler       queries.GetSnapshotQueryHandler
}

// NewServer creates an HTTP server over the full set of use-case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	declineOrderHandler commands.DeclineOrderCommandHandler,
	markPreparedHandler commands.MarkPreparedCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	clearOrdersHandler commands.ClearOrdersCommandHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	ordersByTokenHandler queries.GetOrdersByTokenQueryHandler,
	groupProgressHandler queries.GetGroupProgressQueryHandler,
	summaryStatsHandler queries.GetSummaryStatsQueryHandler,
	snapshotHandler queries.GetSnapshotQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		approveOrderHandler:   approveOrderHandler,
		declineOrderHandler:   declineOrderHandler,
		markPreparedHandler:   markPreparedHandler,
		markDeliveredHandler:  markDeliveredHandler,
		clearOrdersHandler:    clearOrdersHandler,
		ordersByStatusHandler: ordersByStatusHandler,
		ordersByTokenHandler:  ordersByTokenHandler,
		groupProgressHandler:  groupProgressHandler,
		summaryStatsHandler:   summaryStatsHandler,
		snapshotHandler:       snapshotHandler,
	}
}

// RegisterRoutes mounts all endpoints on the Echo instance. Customer
// endpoints are open; every mutating staff action and the admin surface sit
// behind the role gate.
func (s *Server) RegisterRoutes(e *echo.Echo, gate RoleGate) {
	api := e.Group("/api/v1")

	// Customer: open
	api.POST("/orders", s.CreateOrder)
	api.GET("/tokens/:token", s.GetOrdersByToken)
	api.GET("/tokens/:token/progress", s.GetGroupProgress)

	// Staff
	staff := api.Group("", gate.Require(RoleStaff))
	staff.GET("/orders", s.GetOrdersByStatus)
	staff.POST("/orders/:id/approve", s.ApproveOrder)
	staff.POST("/orders/:id/decline", s.DeclineOrder)
	staff.POST("/orders/:id/prepared", s.MarkOrderPrepared)
	staff.POST("/orders/:id/delivered", s.MarkOrderDelivered)
	staff.POST("/groups/:id/approve", s.ApproveGroup)
	staff.POST("/groups/:id/decline", s.DeclineGroup)
	staff.POST("/groups/:id/delivered", s.MarkGroupDelivered)

	// Admin
	admin := api.Group("/admin", gate.Require(RoleAdmin))
	admin.GET("/export", s.ExportOrders)
	admin.DELETE("/orders", s.ClearOrders)
	api.GET("/stats", s.GetSummaryStats, gate.Require(RoleAdmin))
}

// CreateOrder handles POST /api/v1/orders: one customer submission becomes a
// new group of Unapproved lines under a fresh token.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		orderItem, err := commands.NewOrderItem(item.Name, item.Quantity)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, orderItem)
	}

	cmd, err := commands.NewCreateOrderCommand(items, req.Addons, req.CustomerName)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		GroupID: result.GroupID.String(),
		Token:   result.Token.String(),
	})
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	return s.applyToItem(ctx, s.approveItem)
}

// DeclineOrder handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	return s.applyToItem(ctx, s.declineItem)
}

// MarkOrderPrepared handles POST /api/v1/orders/:id/prepared.
func (s *Server) MarkOrderPrepared(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidID(ctx)
	}

	cmd, err := commands.NewMarkPreparedCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markPreparedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	return s.applyToItem(ctx, s.deliverItem)
}

// ApproveGroup handles POST /api/v1/groups/:id/approve.
func (s *Server) ApproveGroup(ctx echo.Context) error {
	return s.applyToGroup(ctx, s.approveItem)
}

// DeclineGroup handles POST /api/v1/groups/:id/decline.
func (s *Server) DeclineGroup(ctx echo.Context) error {
	return s.applyToGroup(ctx, s.declineItem)
}

// MarkGroupDelivered handles POST /api/v1/groups/:id/delivered.
func (s *Server) MarkGroupDelivered(ctx echo.Context) error {
	return s.applyToGroup(ctx, s.deliverItem)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=S.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	lines, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderLines(lines))
}

// GetOrdersByToken handles GET /api/v1/tokens/:token.
func (s *Server) GetOrdersByToken(ctx echo.Context) error {
	token, err := kernel.TokenFromString(ctx.Param("token"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByTokenQuery(token)
	if err != nil {
		return respondError(ctx, err)
	}

	group, err := s.ordersByTokenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GroupResponse{
		GroupID:  group.GroupID.String(),
		Token:    group.Token.String(),
		Lines:    toOrderLines(group.Lines),
		Subtotal: group.Subtotal,
	})
}

// GetGroupProgress handles GET /api/v1/tokens/:token/progress.
func (s *Server) GetGroupProgress(ctx echo.Context) error {
	token, err := kernel.TokenFromString(ctx.Param("token"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetGroupProgressQuery(token)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.groupProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProgressResponse{
		Token:  progress.Token.String(),
		Status: progress.Status.String(),
	})
}

// GetSummaryStats handles GET /api/v1/stats.
func (s *Server) GetSummaryStats(ctx echo.Context) error {
	stats, err := s.summaryStatsHandler.Handle(ctx.Request().Context(), queries.NewGetSummaryStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	counts := make(map[string]int, len(stats.CountByStatus))
	for status, count := range stats.CountByStatus {
		counts[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		CountByStatus: counts,
		Total:         stats.Total,
	})
}

// ExportOrders handles GET /api/v1/admin/export: the full store as a CSV
// download, oldest line first.
func (s *Server) ExportOrders(ctx echo.Context) error {
	lines, err := s.snapshotHandler.Handle(ctx.Request().Context(), queries.NewGetSnapshotQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	filename := "orders-" + time.Now().UTC().Format("20060102-150405") + ".csv"
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(ctx.Response())
	header := []string{
		"order_id", "group_id", "token", "item_name", "quantity",
		"addons", "customer_name", "unit_price", "line_total", "status", "created_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, line := range lines {
		record := []string{
			line.ID.String(),
			line.GroupID.String(),
			line.Token.String(),
			line.ItemName,
			strconv.Itoa(line.Quantity),
			line.Addons,
			line.CustomerName,
			strconv.Itoa(line.UnitPrice),
			strconv.Itoa(line.LineTotal),
			line.Status.String(),
			line.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ClearOrders handles DELETE /api/v1/admin/orders: the irreversible wipe.
func (s *Server) ClearOrders(ctx echo.Context) error {
	cmd := commands.NewClearOrdersCommand()
	if err := s.clearOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// applyToItem runs one transition command against a single order line.
func (s *Server) applyToItem(
	ctx echo.Context,
	run func(echo.Context, commands.Target) error,
) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidID(ctx)
	}

	target, err := commands.NewItemTarget(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	return run(ctx, target)
}

// applyToGroup runs one transition command against every line of a group.
func (s *Server) applyToGroup(
	ctx echo.Context,
	run func(echo.Context, commands.Target) error,
) error {
	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidID(ctx)
	}

	target, err := commands.NewGroupTarget(groupID)
	if err != nil {
		return respondError(ctx, err)
	}

	return run(ctx, target)
}

func (s *Server) approveItem(ctx echo.Context, target commands.Target) error {
	cmd, err := commands.NewApproveOrderCommand(target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) declineItem(ctx echo.Context, target commands.Target) error {
	cmd, err := commands.NewDeclineOrderCommand(target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.declineOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deliverItem(ctx echo.Context, target commands.Target) error {
	cmd, err := commands.NewMarkDeliveredCommand(target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toOrderLines maps query responses onto the JSON line shape.
func toOrderLines(lines []queries.OrderLineResponse) []OrderLine {
	response := make([]OrderLine, len(lines))
	for i, line := range lines {
		response[i] = OrderLine{
			ID:           line.ID.String(),
			GroupID:      line.GroupID.String(),
			Token:        line.Token.String(),
			ItemName:     line.ItemName,
			Quantity:     line.Quantity,
			Addons:       line.Addons,
			CustomerName: line.CustomerName,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.LineTotal,
			Status:       line.Status.String(),
			CreatedAt:    line.CreatedAt,
		}
	}

	return response
}

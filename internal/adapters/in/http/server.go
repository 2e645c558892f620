// Package http exposes the application use cases over a REST API.
// Handlers bind typed request DTOs, translate them into commands and
// queries, and map domain errors onto HTTP status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	assignMasterHandler          commands.AssignMasterCommandHandler
	startOrderHandler            commands.StartOrderCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	attachEvidenceHandler        commands.AttachEvidenceCommandHandler
	createMasterHandler          commands.CreateMasterCommandHandler
	setMasterAvailabilityHandler commands.SetMasterAvailabilityCommandHandler

	// Query handlers
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderDetailsHandler    queries.GetOrderDetailsQueryHandler
	getMastersWithLoadHandler queries.GetMastersWithLoadQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignMasterHandler commands.AssignMasterCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	attachEvidenceHandler commands.AttachEvidenceCommandHandler,
	createMasterHandler commands.CreateMasterCommandHandler,
	setMasterAvailabilityHandler commands.SetMasterAvailabilityCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getMastersWithLoadHandler queries.GetMastersWithLoadQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		assignMasterHandler:          assignMasterHandler,
		startOrderHandler:            startOrderHandler,
		completeOrderHandler:         completeOrderHandler,
		rejectOrderHandler:           rejectOrderHandler,
		attachEvidenceHandler:        attachEvidenceHandler,
		createMasterHandler:          createMasterHandler,
		setMasterAvailabilityHandler: setMasterAvailabilityHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getOrderDetailsHandler:       getOrderDetailsHandler,
		getMastersWithLoadHandler:    getMastersWithLoadHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/assign", s.AssignOrder)
	v1.POST("/orders/:id/adl", s.AttachEvidence)
	v1.POST("/orders/:id/complete", s.CompleteOrder)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)

	v1.GET("/masters", s.GetMasters)
	v1.POST("/masters", s.CreateMaster)
	v1.PATCH("/masters/:id/availability", s.SetMasterAvailability)
}

// GetOrders godoc
// @Summary List orders
// @Description Retrieve all orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} OrderSummaryResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, ord := range orders {
		response[i] = OrderSummaryResponse{
			ID:           ord.ID.String(),
			Title:        ord.Title,
			CustomerName: ord.CustomerName,
			Geo: GeoPoint{
				Lat: ord.Location.Latitude(),
				Lng: ord.Location.Longitude(),
			},
			Status:    ord.Status,
			MasterID:  uuidToStringPtr(ord.MasterID),
			CreatedAt: ord.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder godoc
// @Summary Create an order
// @Description Register a new service order at a geographic location
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order to create"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid order data"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	if req.Geo == nil {
		return s.badRequest(ctx, "geo coordinates are required")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.Title,
		req.Description,
		req.CustomerName,
		req.CustomerPhone,
		req.Geo.Lat,
		req.Geo.Lng,
	)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder godoc
// @Summary Get order details
// @Description Retrieve a single order with its assigned master and evidence
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetailsResponse
// @Failure 400 {object} ErrorResponse "Invalid order ID"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order ID")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := OrderDetailsResponse{
		ID:            details.ID.String(),
		Title:         details.Title,
		Description:   details.Description,
		CustomerName:  details.CustomerName,
		CustomerPhone: details.CustomerPhone,
		Geo: GeoPoint{
			Lat: details.Location.Latitude(),
			Lng: details.Location.Longitude(),
		},
		Status:    details.Status,
		Evidence:  make([]EvidenceResponse, len(details.Evidence)),
		CreatedAt: details.CreatedAt,
		UpdatedAt: details.UpdatedAt,
	}

	if details.Master != nil {
		response.Master = &MasterSummaryResponse{
			ID:     details.Master.ID.String(),
			Name:   details.Master.Name,
			Rating: details.Master.Rating,
		}
	}

	for i, record := range details.Evidence {
		response.Evidence[i] = EvidenceResponse{
			ID:      record.ID.String(),
			OrderID: details.ID.String(),
			Type:    record.Kind,
			URL:     record.URL,
			GPS: GeoPoint{
				Lat: record.Location.Latitude(),
				Lng: record.Location.Longitude(),
			},
			CapturedAt: record.CapturedAt,
			Meta:       record.Meta,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder godoc
// @Summary Assign a master to an order
// @Description Pick the best available master for a new order and assign it
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "Master assigned"
// @Failure 400 {object} ErrorResponse "Order is not assignable or no master is available"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id}/assign [post]
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewAssignMasterCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.assignMasterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachEvidence godoc
// @Summary Attach completion evidence to an order
// @Description Store a photo or video record with GPS coordinates and capture time
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body AttachEvidenceRequest true "Evidence to attach"
// @Success 201 {object} EvidenceResponse
// @Failure 400 {object} ErrorResponse "Invalid evidence payload"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id}/adl [post]
func (s *Server) AttachEvidence(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order ID")
	}

	var req AttachEvidenceRequest
	if err = ctx.Bind(&req); err != nil {
		if isGPSTypeError(err) {
			return s.badRequest(ctx, evidence.ErrGPSCoordinatesRequired.Error())
		}
		return s.badRequest(ctx, "invalid request body")
	}

	var lat, lng *float64
	if req.GPS != nil {
		lat = req.GPS.Lat
		lng = req.GPS.Lng
	}

	cmd, err := commands.NewAttachEvidenceCommand(
		orderID,
		req.Type,
		req.URL,
		lat,
		lng,
		req.CapturedAt,
		req.Meta,
	)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	record, err := s.attachEvidenceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, EvidenceResponse{
		ID:      record.ID().String(),
		OrderID: record.OrderID().String(),
		Type:    string(record.Kind()),
		URL:     record.URL(),
		GPS: GeoPoint{
			Lat: record.Location().Latitude(),
			Lng: record.Location().Longitude(),
		},
		CapturedAt: record.CapturedAt(),
		Meta:       record.Meta(),
	})
}

// CompleteOrder godoc
// @Summary Complete an order
// @Description Finish an assigned or in-progress order, requires at least one photo with GPS coordinates
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "Order completed"
// @Failure 400 {object} ErrorResponse "Order is not completable or evidence is missing"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id}/complete [post]
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order to in_progress (start work) or rejected (cancel)
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body StatusUpdateRequest true "Target status"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid or unreachable status"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id}/status [post]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order ID")
	}

	var req StatusUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	switch req.Status {
	case order.InProgress.String():
		cmd, cmdErr := commands.NewStartOrderCommand(orderID)
		if cmdErr != nil {
			return s.badRequest(ctx, cmdErr.Error())
		}
		err = s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	case order.Rejected.String():
		cmd, cmdErr := commands.NewRejectOrderCommand(orderID)
		if cmdErr != nil {
			return s.badRequest(ctx, cmdErr.Error())
		}
		err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	default:
		return s.badRequest(ctx, "status must be in_progress or rejected")
	}

	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMasters godoc
// @Summary List masters
// @Description Retrieve all masters with their current active order load
// @Tags masters
// @Produce json
// @Success 200 {array} MasterWithLoadResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /masters [get]
func (s *Server) GetMasters(ctx echo.Context) error {
	query := queries.NewGetMastersWithLoadQuery()

	masters, err := s.getMastersWithLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]MasterWithLoadResponse, len(masters))
	for i, m := range masters {
		response[i] = MasterWithLoadResponse{
			ID:          m.ID.String(),
			Name:        m.Name,
			Rating:      m.Rating,
			IsAvailable: m.IsAvailable,
			Geo: GeoPoint{
				Lat: m.Location.Latitude(),
				Lng: m.Location.Longitude(),
			},
			ActiveOrders: m.ActiveOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMaster godoc
// @Summary Create a master
// @Description Register a new master with a rating and home location
// @Tags masters
// @Accept json
// @Produce json
// @Param request body CreateMasterRequest true "Master to create"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid master data"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /masters [post]
func (s *Server) CreateMaster(ctx echo.Context) error {
	var req CreateMasterRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	if req.Geo == nil {
		return s.badRequest(ctx, "geo coordinates are required")
	}

	masterID := kernel.NewUUID()
	cmd, err := commands.NewCreateMasterCommand(masterID, req.Name, req.Rating, req.Geo.Lat, req.Geo.Lng)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.createMasterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: masterID.String()})
}

// SetMasterAvailability godoc
// @Summary Set master availability
// @Description Mark a master as available for assignment or take them offline
// @Tags masters
// @Accept json
// @Produce json
// @Param id path string true "Master ID"
// @Param request body AvailabilityRequest true "Availability flag"
// @Success 204 "Availability updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Master not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /masters/{id}/availability [patch]
func (s *Server) SetMasterAvailability(ctx echo.Context) error {
	masterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid master ID")
	}

	var req AvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	if req.IsAvailable == nil {
		return s.badRequest(ctx, "isAvailable is required")
	}

	cmd, err := commands.NewSetMasterAvailabilityCommand(masterID, *req.IsAvailable)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.setMasterAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case isDomainRuleViolation(err):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// isDomainRuleViolation reports whether the error is a validation or
// precondition failure that the client can correct, as opposed to an
// infrastructure fault.
func isDomainRuleViolation(err error) bool {
	rules := []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		order.ErrOrderIsNotNew,
		order.ErrOrderNotStartable,
		order.ErrOrderNotCompletable,
		order.ErrOrderNotRejectable,
		commands.ErrNoAvailableMasters,
		commands.ErrEvidenceRequired,
		evidence.ErrGPSCoordinatesRequired,
		evidence.ErrTimestampRequired,
		evidence.ErrTimestampInvalid,
		evidence.ErrKindInvalid,
		evidence.ErrURLRequired,
	}

	for _, rule := range rules {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}

// isGPSTypeError reports whether a bind failure was caused by a non-numeric
// GPS component. Such payloads carry no usable coordinates, so they surface
// the same reason as missing ones.
func isGPSTypeError(err error) bool {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		err = httpErr.Internal
	}

	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Field, "gps")
}

func uuidToStringPtr(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

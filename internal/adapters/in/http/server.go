// Package http exposes the platform's REST API on echo. Handlers translate
// HTTP requests into commands and queries and map domain errors to status
// codes; no business rules live here.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/notifications"
	"logitrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler     commands.CreateParcelCommandHandler
	transitionParcelHandler commands.TransitionParcelCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler

	// Query handlers
	listParcelsHandler       queries.ListParcelsQueryHandler
	getParcelHistoryHandler  queries.GetParcelHistoryQueryHandler
	trackParcelHandler       queries.TrackParcelQueryHandler
	getDriverRouteHandler    queries.GetDriverRouteQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	hub *notifications.Hub
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the notification hub.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	transitionParcelHandler commands.TransitionParcelCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	listParcelsHandler queries.ListParcelsQueryHandler,
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getDriverRouteHandler queries.GetDriverRouteQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	hub *notifications.Hub,
) *Server {
	return &Server{
		createParcelHandler:      createParcelHandler,
		transitionParcelHandler:  transitionParcelHandler,
		assignDriverHandler:      assignDriverHandler,
		listParcelsHandler:       listParcelsHandler,
		getParcelHistoryHandler:  getParcelHistoryHandler,
		trackParcelHandler:       trackParcelHandler,
		getDriverRouteHandler:    getDriverRouteHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
		hub:                      hub,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/:id/history", s.GetParcelHistory)
	api.POST("/parcels/:id/status", s.TransitionParcel)
	api.POST("/parcels/:id/assign", s.AssignDriver)

	api.GET("/track/:code", s.TrackParcel)
	api.GET("/drivers/:id/route", s.GetDriverRoute)
	api.GET("/dashboard/stats", s.GetDashboardStats)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.GET("/notifications/stream", s.StreamNotifications)
}

// CreateParcel handles POST /api/v1/parcels - creates a shipment for the
// calling customer.
func (s *Server) CreateParcel(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CreateParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateParcelCommand(
		actorID,
		req.RecipientName, req.RecipientPhone, req.RecipientAddress,
		req.PickupAddress,
		req.PackageType,
		req.WeightKg, req.DeclaredValue,
		req.PaymentMethod,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	p, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toParcelResponse(p))
}

// ListParcels handles GET /api/v1/parcels - lists the caller's visible
// parcels, optionally filtered by ?status=.
func (s *Server) ListParcels(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var statusFilter *parcel.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := parcel.StatusFromString(raw)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewListParcelsQuery(actorID, statusFilter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ParcelSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = ParcelSummaryResponse{
			ID:               row.ID.String(),
			TrackingCode:     row.TrackingCode,
			Status:           row.Status.String(),
			PackageType:      row.PackageType.String(),
			RecipientName:    row.RecipientName,
			RecipientAddress: row.RecipientAddress,
			PickupAddress:    row.PickupAddress,
			WeightKg:         row.WeightKg,
			DeliveryFee:      row.DeliveryFee,
			CreatedAt:        row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcelHistory handles GET /api/v1/parcels/:id/history - returns the
// parcel's tracking ledger, oldest first.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackingEventResponses(history))
}

// TransitionParcel handles POST /api/v1/parcels/:id/status - moves the parcel
// to a new lifecycle status.
func (s *Server) TransitionParcel(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransitionParcelCommand(parcelID, actorID, status, req.Location, req.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	p, err := s.transitionParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(p))
}

// AssignDriver handles POST /api/v1/parcels/:id/assign - hands the parcel to a
// driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewAssignDriverCommand(parcelID, actorID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	p, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(p))
}

// TrackParcel handles GET /api/v1/track/:code - the public tracking view.
// No identity header is required; the code is the credential.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackResponse{
		TrackingCode: view.TrackingCode,
		Status:       view.Status.String(),
		PackageType:  view.PackageType.String(),
		CreatedAt:    view.CreatedAt,
		DeliveredAt:  view.DeliveredAt,
		Events:       toTrackingEventResponses(view.Events),
	})
}

// GetDriverRoute handles GET /api/v1/drivers/:id/route - the driver's
// sequenced open deliveries.
func (s *Server) GetDriverRoute(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetDriverRouteQuery(driverID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	route, err := s.getDriverRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]RouteStopResponse, len(route))
	for i, stop := range route {
		response[i] = RouteStopResponse{
			Stop:             stop.Stop,
			ParcelID:         stop.ParcelID.String(),
			TrackingCode:     stop.TrackingCode,
			Status:           stop.Status.String(),
			PackageType:      stop.PackageType.String(),
			Express:          stop.Express,
			PickupAddress:    stop.PickupAddress,
			RecipientName:    stop.RecipientName,
			RecipientAddress: stop.RecipientAddress,
			CreatedAt:        stop.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats - scoped per-status
// parcel counts.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDashboardStatsQuery(actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		PickedUp:  stats.PickedUp,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
		Cancelled: stats.Cancelled,
	})
}

// ListNotifications handles GET /api/v1/notifications - the caller's inbox,
// newest first. ?unread=true narrows to unread entries.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	unreadOnly := ctx.QueryParam("unread") == "true"

	inbox, err := s.hub.Inbox(ctx.Request().Context(), actorID, unreadOnly)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]NotificationResponse, len(inbox))
	for i, n := range inbox {
		response[i] = toNotificationResponse(n)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	if _, err := actorIDFromRequest(ctx); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	if err = s.hub.MarkRead(ctx.Request().Context(), id); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StreamNotifications handles GET /api/v1/notifications/stream - a server-sent
// events stream of the caller's live notifications. The subscription ends when
// the client disconnects.
func (s *Server) StreamNotifications(ctx echo.Context) error {
	actorID, err := actorIDFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	sub := s.hub.Subscribe(actorID)
	defer sub.Close()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case n, ok := <-sub.Events():
			if !ok {
				return nil
			}

			payload, marshalErr := json.Marshal(toNotificationResponse(n))
			if marshalErr != nil {
				continue
			}
			if _, writeErr := resp.Write(append(append([]byte("data: "), payload...), '\n', '\n')); writeErr != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// errorResponse maps domain errors to HTTP status codes with a JSON body.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrAccessDenied):
		code, message = http.StatusForbidden, err.Error()
	case errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, parcel.ErrDriverAlreadyAssigned),
		errors.Is(err, parcel.ErrParcelNotAssignable):
		code, message = http.StatusConflict, err.Error()
	case errors.Is(err, ports.ErrPaymentFailed):
		code, message = http.StatusPaymentRequired, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code, message = http.StatusBadRequest, err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

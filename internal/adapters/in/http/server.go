// Package http exposes the yard's operations over a JSON API built on echo.
// Handlers translate requests into commands and queries; every business rule
// stays behind the command handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/application/usecases/queries"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createScheduleHandler       commands.CreateScheduleCommandHandler
	confirmScheduleHandler      commands.ConfirmScheduleCommandHandler
	registerGateMovementHandler commands.RegisterGateMovementCommandHandler
	openInspectionHandler       commands.OpenInspectionCommandHandler
	completeChecklistHandler    commands.CompleteChecklistCommandHandler
	submitEIRHandler            commands.SubmitEIRCommandHandler
	registerBillingHandler      commands.RegisterBillingCommandHandler

	// Query handlers
	getDirectoryHandler queries.GetDirectoryQueryHandler
	getGateLogHandler   queries.GetGateLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createScheduleHandler commands.CreateScheduleCommandHandler,
	confirmScheduleHandler commands.ConfirmScheduleCommandHandler,
	registerGateMovementHandler commands.RegisterGateMovementCommandHandler,
	openInspectionHandler commands.OpenInspectionCommandHandler,
	completeChecklistHandler commands.CompleteChecklistCommandHandler,
	submitEIRHandler commands.SubmitEIRCommandHandler,
	registerBillingHandler commands.RegisterBillingCommandHandler,
	getDirectoryHandler queries.GetDirectoryQueryHandler,
	getGateLogHandler queries.GetGateLogQueryHandler,
) *Server {
	return &Server{
		createScheduleHandler:       createScheduleHandler,
		confirmScheduleHandler:      confirmScheduleHandler,
		registerGateMovementHandler: registerGateMovementHandler,
		openInspectionHandler:       openInspectionHandler,
		completeChecklistHandler:    completeChecklistHandler,
		submitEIRHandler:            submitEIRHandler,
		registerBillingHandler:      registerBillingHandler,
		getDirectoryHandler:         getDirectoryHandler,
		getGateLogHandler:           getGateLogHandler,
	}
}

// RegisterRoutes binds every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/schedules", s.CreateSchedule)
	api.POST("/schedules/:id/confirm", s.ConfirmSchedule)
	api.POST("/gate/movements", s.RegisterGateMovement)
	api.POST("/containers/:internalId/inspection", s.OpenInspection)
	api.POST("/containers/:internalId/checklist", s.CompleteChecklist)
	api.POST("/containers/:internalId/eir", s.SubmitEIR)
	api.POST("/containers/:internalId/billing", s.RegisterBilling)
	api.GET("/directory", s.GetDirectory)
	api.GET("/gate/log", s.GetGateLog)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateSchedule handles POST /api/v1/schedules - registers an appointment.
func (s *Server) CreateSchedule(ctx echo.Context) error {
	var body NewScheduleRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewCreateScheduleCommand(
		scheduleID, body.ContainerNumber, body.ContainerType,
		body.ShippingLine, body.Location, body.Date, body.Time)
	if err != nil {
		return badRequest(ctx, "Invalid schedule data: "+err.Error())
	}

	if err = s.createScheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, NewScheduleResponse{ID: scheduleID.String()})
}

// ConfirmSchedule handles POST /api/v1/schedules/:id/confirm.
func (s *Server) ConfirmSchedule(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid schedule id")
	}

	cmd, err := commands.NewConfirmScheduleCommand(scheduleID)
	if err != nil {
		return badRequest(ctx, "Invalid schedule id")
	}

	if err = s.confirmScheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterGateMovement handles POST /api/v1/gate/movements.
func (s *Server) RegisterGateMovement(ctx echo.Context) error {
	var body GateMovementRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	movement, err := gate.MovementFromString(body.Movement)
	if err != nil {
		return badRequest(ctx, "Invalid movement: "+body.Movement)
	}

	cargoStatus, err := container.CargoStatusFromString(body.CargoStatus)
	if err != nil {
		return badRequest(ctx, "Invalid cargo status: "+body.CargoStatus)
	}

	cmd, err := commands.NewRegisterGateMovementCommand(
		kernel.NewUUID(), body.ContainerNumber, movement,
		body.Plate, body.DriverName, body.InspectorName, cargoStatus)
	if err != nil {
		return badRequest(ctx, "Invalid movement data: "+err.Error())
	}

	if err = s.registerGateMovementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// OpenInspection handles POST /api/v1/containers/:internalId/inspection.
func (s *Server) OpenInspection(ctx echo.Context) error {
	internalID, err := internalIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid internal id")
	}

	var body InspectionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOpenInspectionCommand(internalID, body.InspectorName)
	if err != nil {
		return badRequest(ctx, "Invalid inspection data: "+err.Error())
	}

	if err = s.openInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteChecklist handles POST /api/v1/containers/:internalId/checklist.
func (s *Server) CompleteChecklist(ctx echo.Context) error {
	internalID, err := internalIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid internal id")
	}

	var body ChecklistRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteChecklistCommand(internalID, body.InspectorName)
	if err != nil {
		return badRequest(ctx, "Invalid checklist data: "+err.Error())
	}

	if err = s.completeChecklistHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitEIR handles POST /api/v1/containers/:internalId/eir.
func (s *Server) SubmitEIR(ctx echo.Context) error {
	internalID, err := internalIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid internal id")
	}

	var body EIRRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitEIRCommand(internalID, body.Condition, body.SealNumber, body.InspectorName)
	if err != nil {
		return badRequest(ctx, "Invalid EIR data: "+err.Error())
	}

	if err = s.submitEIRHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterBilling handles POST /api/v1/containers/:internalId/billing.
func (s *Server) RegisterBilling(ctx echo.Context) error {
	internalID, err := internalIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid internal id")
	}

	var body BillingRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterBillingCommand(internalID, body.ClerkName)
	if err != nil {
		return badRequest(ctx, "Invalid billing data: "+err.Error())
	}

	if err = s.registerBillingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDirectory handles GET /api/v1/directory.
func (s *Server) GetDirectory(ctx echo.Context) error {
	query, err := queries.NewGetDirectoryQuery(
		ctx.QueryParam("terminal"),
		ctx.QueryParam("situation"),
		ctx.QueryParam("status"),
		ctx.QueryParam("search"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid directory filter: "+err.Error())
	}

	rows, err := s.getDirectoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve directory")
	}

	response := make([]DirectoryEntry, len(rows))
	for i, row := range rows {
		response[i] = DirectoryEntry{
			InternalID:      row.InternalID,
			ContainerNumber: row.ContainerNumber,
			Client:          row.Client,
			ShippingLine:    row.ShippingLine,
			Booking:         row.Booking,
			Terminal:        row.Terminal,
			CargoStatus:     row.CargoStatus,
			State:           row.State,
			Situation:       row.Situation,
			Billed:          row.Billed,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetGateLog handles GET /api/v1/gate/log.
func (s *Server) GetGateLog(ctx echo.Context) error {
	query := queries.NewGetGateLogQuery(ctx.QueryParam("containerNumber"))

	rows, err := s.getGateLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve gate log")
	}

	response := make([]GateLogEntry, len(rows))
	for i, row := range rows {
		response[i] = GateLogEntry{
			ContainerNumber: row.ContainerNumber,
			Movement:        row.Movement,
			Plate:           row.Plate,
			DriverName:      row.DriverName,
			InspectorName:   row.InspectorName,
			CargoStatus:     row.CargoStatus,
			At:              row.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func internalIDParam(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("internalId"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// businessError maps domain failures onto HTTP statuses: missing objects are
// 404, lifecycle and capacity conflicts are 409, bad input is 400.
func businessError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrNoActiveContainer):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrCapacityExceeded):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrIncompleteEIR):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	RegisterZone     commands.RegisterZoneCommandHandler
	UpdateZoneRate   commands.UpdateZoneRateCommandHandler
	RegisterCourier  commands.RegisterCourierCommandHandler
	ReassignCourier  commands.ReassignCourierCommandHandler
	RegisterWaybills commands.RegisterWaybillsCommandHandler
	DispatchWaybill  commands.DispatchWaybillCommandHandler
	DispatchWaybills commands.DispatchWaybillsCommandHandler
	ReceiveWaybill   commands.ReceiveWaybillCommandHandler
	ReceiveWaybills  commands.ReceiveWaybillsCommandHandler
	RegisterPickup   commands.RegisterPickupCommandHandler
	UpdatePickup     commands.UpdatePickupCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetWaybillStatus     queries.GetWaybillStatusQueryHandler
	GetWaybillStatuses   queries.GetWaybillStatusesQueryHandler
	VerifyWaybills       queries.VerifyWaybillsQueryHandler
	GetSettlement        queries.GetSettlementQueryHandler
	GetOverdueDispatches queries.GetOverdueDispatchesQueryHandler
	GetAllZones          queries.GetAllZonesQueryHandler
	GetAllCouriers       queries.GetAllCouriersQueryHandler
	GetAllDispatches     queries.GetAllDispatchesQueryHandler
	GetAllPickups        queries.GetAllPickupsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers

	// overdueAfter is used when GET /dispatches/overdue carries no olderThan.
	overdueAfter time.Duration
	logger       *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	overdueAfter time.Duration,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands:     commandHandlers,
		queries:      queryHandlers,
		overdueAfter: overdueAfter,
		logger:       logger.With("component", "http"),
	}
}

// fail renders err with the status code of its failure kind. Internal failures are
// logged and their message is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	kind := services.Classify(err)
	code := statusCode(kind)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, newError(code, kind, message))
}

// itemMessage is the message reported for one failed item of a batch. Internal failures
// are logged and replaced by a generic text, as fail does for whole requests.
func (s *Server) itemMessage(ctx echo.Context, item string, kind services.FailureKind, err error) string {
	if statusCode(kind) != http.StatusInternalServerError {
		return err.Error()
	}
	s.logger.ErrorContext(ctx.Request().Context(), "batch item failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
		"item", item,
		"error", err,
	)
	return http.StatusText(http.StatusInternalServerError)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, services.FailureInvalidInput, message))
}

func statusCode(kind services.FailureKind) int {
	switch kind {
	case services.FailureInvalidInput:
		return http.StatusBadRequest
	case services.FailureNotFound:
		return http.StatusNotFound
	case services.FailureUnknownCourier:
		return http.StatusUnprocessableEntity
	case services.FailureAlreadyDispatched,
		services.FailureAlreadyReceived,
		services.FailureNotDispatchedYet,
		services.FailureAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(code int, kind services.FailureKind, message string) servers.Error {
	e := servers.Error{Code: code, Message: message}
	if kind != "" {
		k := string(kind)
		e.Kind = &k
	}
	return e
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/reception"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDispatches handles GET /api/v1/dispatches.
func (s *Server) GetDispatches(ctx echo.Context) error {
	dispatches, err := s.queries.GetAllDispatches.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dispatchesOf(dispatches))
}

// DispatchWaybill handles POST /api/v1/dispatches.
func (s *Server) DispatchWaybill(ctx echo.Context) error {
	var body servers.DispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchWaybillCommand(body.TrackingNumber, body.Courier)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.commands.DispatchWaybill.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, dispatchOf(d))
}

// DispatchWaybills handles POST /api/v1/dispatches/bulk. Item failures are part of a 200
// response.
func (s *Server) DispatchWaybills(ctx echo.Context) error {
	var body servers.BulkDispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchWaybillsCommand(body.TrackingNumbers, body.Courier)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.commands.DispatchWaybills.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.batchResultOf(ctx, result))
}

// ReceiveWaybill handles POST /api/v1/receptions.
func (s *Server) ReceiveWaybill(ctx echo.Context) error {
	var body servers.ReceptionRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveWaybillCommand(body.TrackingNumber, string(body.Kind), valueOf(body.Reason))
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.commands.ReceiveWaybill.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, receptionOf(r))
}

// ReceiveWaybills handles POST /api/v1/receptions/bulk.
func (s *Server) ReceiveWaybills(ctx echo.Context) error {
	var body servers.BulkReceptionRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ReceptionItem, len(body.Items))
	for i, item := range body.Items {
		items[i] = commands.ReceptionItem{
			TrackingNumber: item.TrackingNumber,
			Kind:           string(item.Kind),
			Reason:         valueOf(item.Reason),
		}
	}

	cmd, err := commands.NewReceiveWaybillsCommand(items)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.commands.ReceiveWaybills.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.batchResultOf(ctx, result))
}

func dispatchOf(d *dispatch.Dispatch) servers.Dispatch {
	return servers.Dispatch{
		TrackingNumber: d.TrackingNumber().String(),
		Courier:        d.Courier().String(),
		Zone:           d.Zone().String(),
		DispatchedAt:   d.DispatchedAt(),
	}
}

func dispatchesOf(dispatches []queries.DispatchResponse) []servers.Dispatch {
	response := make([]servers.Dispatch, len(dispatches))
	for i, d := range dispatches {
		response[i] = servers.Dispatch{
			TrackingNumber: d.TrackingNumber,
			Courier:        d.Courier,
			Zone:           d.Zone,
			DispatchedAt:   d.DispatchedAt,
		}
	}
	return response
}

func receptionOf(r *reception.Reception) servers.Reception {
	return servers.Reception{
		TrackingNumber: r.TrackingNumber().String(),
		Kind:           r.Kind().String(),
		Reason:         optionalString(r.Reason()),
		ReceivedAt:     r.ReceivedAt(),
	}
}

func (s *Server) batchResultOf(ctx echo.Context, result commands.BatchResult) servers.BatchResult {
	response := servers.BatchResult{
		Succeeded: nonNil(result.Succeeded),
		Failed:    make([]servers.ItemFailure, len(result.Failed)),
	}
	for i, f := range result.Failed {
		response.Failed[i] = servers.ItemFailure{
			TrackingNumber: f.TrackingNumber,
			Kind:           string(f.Kind),
			Message:        s.itemMessage(ctx, f.TrackingNumber, f.Kind, f.Err),
		}
	}
	return response
}

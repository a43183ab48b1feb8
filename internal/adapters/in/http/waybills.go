package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ImportWaybills handles POST /api/v1/waybills/import. Row failures are part of a 200
// response; only storage failures fail the request.
func (s *Server) ImportWaybills(ctx echo.Context) error {
	var body servers.ImportWaybillsJSONBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	rows := make([]commands.WaybillRow, len(body))
	for i, row := range body {
		rows[i] = commands.WaybillRow{
			Sender:         valueOf(row.Sender),
			TrackingNumber: row.TrackingNumber,
			Recipient:      valueOf(row.Recipient),
			Address:        valueOf(row.Address),
			City:           valueOf(row.City),
		}
	}

	cmd, err := commands.NewRegisterWaybillsCommand(rows)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.commands.RegisterWaybills.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.ImportResult{
		Inserted: nonNil(result.Inserted),
		Skipped:  nonNil(result.Skipped),
		Failed:   make([]servers.RowFailure, len(result.Failed)),
	}
	for i, f := range result.Failed {
		response.Failed[i] = servers.RowFailure{
			Row:            f.Row,
			TrackingNumber: f.TrackingNumber,
			Kind:           string(f.Kind),
			Message:        s.itemMessage(ctx, f.TrackingNumber, f.Kind, f.Err),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWaybillStatus handles GET /api/v1/waybills/{trackingNumber}/status.
func (s *Server) GetWaybillStatus(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewGetWaybillStatusQuery(trackingNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.queries.GetWaybillStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, waybillStatusOf(status))
}

// GetWaybillStatuses handles POST /api/v1/waybills/statuses.
func (s *Server) GetWaybillStatuses(ctx echo.Context) error {
	var body servers.StatusesRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetWaybillStatusesQuery(body.ScannerInput)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.queries.GetWaybillStatuses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.StatusItem, len(items))
	for i, item := range items {
		response[i] = servers.StatusItem{Input: item.Input}
		if item.Status != nil {
			status := waybillStatusOf(*item.Status)
			response[i].Status = &status
			continue
		}
		response[i].Kind = optionalString(string(item.Failure))
		response[i].Message = optionalString(s.itemMessage(ctx, item.Input, item.Failure, item.Err))
	}
	return ctx.JSON(http.StatusOK, response)
}

// VerifyWaybills handles POST /api/v1/waybills/verify.
func (s *Server) VerifyWaybills(ctx echo.Context) error {
	var body servers.VerifyRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewVerifyWaybillsQuery(body.TrackingNumbers)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.queries.VerifyWaybills.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.VerifyResult{Found: result.Found, Missing: result.Missing})
}

// WaybillExists handles GET /api/v1/waybills/{trackingNumber}/exists.
func (s *Server) WaybillExists(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewVerifyWaybillsQuery([]string{trackingNumber})
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.queries.VerifyWaybills.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.Existence{TrackingNumber: trackingNumber, Exists: len(result.Found) == 1}
	if response.Exists {
		response.TrackingNumber = result.Found[0]
	}
	return ctx.JSON(http.StatusOK, response)
}

func waybillStatusOf(s queries.WaybillStatusResponse) servers.WaybillStatus {
	return servers.WaybillStatus{
		TrackingNumber: s.TrackingNumber,
		Status:         servers.WaybillStatusStatus(s.Status),
		Reason:         optionalString(s.Reason),
		Courier:        optionalString(s.Courier),
		Zone:           optionalString(s.Zone),
		DispatchedAt:   s.DispatchedAt,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

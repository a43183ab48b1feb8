package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetPickups handles GET /api/v1/pickups.
func (s *Server) GetPickups(ctx echo.Context) error {
	pickups, err := s.queries.GetAllPickups.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Pickup, len(pickups))
	for i, p := range pickups {
		response[i] = servers.Pickup{
			Id:             p.ID.Bytes(),
			InternalNumber: p.InternalNumber,
			Date:           openapi_types.Date{Time: p.Date},
			Notes:          optionalString(p.Notes),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterPickup handles POST /api/v1/pickups.
func (s *Server) RegisterPickup(ctx echo.Context) error {
	var body servers.NewPickup
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterPickupCommand(body.InternalNumber, body.Date.Time.Format(kernel.DateLayout), valueOf(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.commands.RegisterPickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, pickupOf(p))
}

// UpdatePickup handles PUT /api/v1/pickups/{id}.
func (s *Server) UpdatePickup(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.NewPickup
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePickupCommand(
		id.String(),
		body.InternalNumber,
		body.Date.Time.Format(kernel.DateLayout),
		valueOf(body.Notes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.commands.UpdatePickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, pickupOf(p))
}

func pickupOf(p *pickup.Pickup) servers.Pickup {
	return servers.Pickup{
		Id:             p.ID().Bytes(),
		InternalNumber: p.InternalNumber(),
		Date:           openapi_types.Date{Time: p.Date()},
		Notes:          optionalString(p.Notes()),
	}
}

package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetZones handles GET /api/v1/zones.
func (s *Server) GetZones(ctx echo.Context) error {
	zones, err := s.queries.GetAllZones.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{Name: z.Name, Rate: z.Rate.String()}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterZone handles POST /api/v1/zones.
func (s *Server) RegisterZone(ctx echo.Context) error {
	var body servers.NewZone
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterZoneCommand(body.Name, body.Rate)
	if err != nil {
		return s.fail(ctx, err)
	}

	z, err := s.commands.RegisterZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, zoneOf(z))
}

// UpdateZoneRate handles PUT /api/v1/zones/{name}/rate.
func (s *Server) UpdateZoneRate(ctx echo.Context, name string) error {
	var body servers.ZoneRate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateZoneRateCommand(name, body.Rate)
	if err != nil {
		return s.fail(ctx, err)
	}

	z, err := s.commands.UpdateZoneRate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, zoneOf(z))
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.queries.GetAllCouriers.Handle(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = courierResponse(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var body servers.NewCourier
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCourierCommand(body.Name, body.Zone)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.commands.RegisterCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, courierOf(c))
}

// ReassignCourier handles PUT /api/v1/couriers/{name}/zone.
func (s *Server) ReassignCourier(ctx echo.Context, name string) error {
	var body servers.CourierZone
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReassignCourierCommand(name, body.Zone)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.commands.ReassignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, courierOf(c))
}

func zoneOf(z *zone.Zone) servers.Zone {
	return servers.Zone{Name: z.Name().String(), Rate: z.Rate().String()}
}

func courierOf(c *courier.Courier) servers.Courier {
	return servers.Courier{Name: c.Name().String(), Zone: c.Zone().String()}
}

func courierResponse(c queries.CourierResponse) servers.Courier {
	return servers.Courier{Name: c.Name, Zone: c.Zone}
}

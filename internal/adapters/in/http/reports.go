package http

import (
	"fmt"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetSettlement handles GET /api/v1/settlement.
func (s *Server) GetSettlement(ctx echo.Context, params servers.GetSettlementParams) error {
	query, err := queries.NewGetSettlementQuery(
		valueOf(params.Courier),
		params.From.Time.Format(kernel.DateLayout),
		params.To.Time.Format(kernel.DateLayout),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	settlement, err := s.queries.GetSettlement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.Settlement{
		From:  openapi_types.Date{Time: query.Period().From()},
		To:    openapi_types.Date{Time: query.Period().To()},
		Lines: make([]servers.SettlementLine, len(settlement.Lines)),
		Count: settlement.Count,
		Total: settlement.Total.String(),
	}
	for i, line := range settlement.Lines {
		response.Lines[i] = servers.SettlementLine{
			Courier: line.Courier,
			Count:   line.Count,
			Total:   line.Total.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueDispatches handles GET /api/v1/dispatches/overdue.
func (s *Server) GetOverdueDispatches(ctx echo.Context, params servers.GetOverdueDispatchesParams) error {
	olderThan := s.overdueAfter
	if params.OlderThan != nil {
		d, err := time.ParseDuration(*params.OlderThan)
		if err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("%q is not a duration", *params.OlderThan)))
		}
		olderThan = d
	}

	query, err := queries.NewGetOverdueDispatchesQuery(olderThan)
	if err != nil {
		return s.fail(ctx, err)
	}

	dispatches, err := s.queries.GetOverdueDispatches.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dispatchesOf(dispatches))
}

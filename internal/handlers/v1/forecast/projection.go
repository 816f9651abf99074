package forecast

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/logging"
)

// ProjectionEvent is one projected inflow or outflow in API responses.
type ProjectionEvent struct {
	Name      string `json:"name" doc:"Event name"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	Direction string `json:"direction" doc:"inflow or outflow"`
}

// ProjectionDay is one day of the cash-flow projection in API responses.
type ProjectionDay struct {
	Date        string            `json:"date" doc:"RFC3339 day"`
	Events      []ProjectionEvent `json:"events,omitempty" doc:"Events falling on this day"`
	NetChange   string            `json:"netChange" doc:"Inflows minus outflows for the day"`
	EndOfDay    string            `json:"endOfDay" doc:"Projected balance at end of day"`
	BelowZero   bool              `json:"belowZero" doc:"Whether the projected balance is negative"`
	LowestSoFar bool              `json:"lowestSoFar" doc:"Whether this is the lowest projected balance so far"`
}

// ProjectionInput is the Huma input for the cash-flow projection.
type ProjectionInput struct {
	HorizonDays int    `query:"horizonDays" minimum:"1" doc:"Days to project, capped by server config"`
	AsOf        string `query:"asOf" format:"date-time" doc:"Projection start day, defaults to now"`
}

// ProjectionResponseBody is the response body for the cash-flow projection.
type ProjectionResponseBody struct {
	Days []ProjectionDay `json:"days" doc:"One entry per projected day"`
}

// ProjectionOutput is the Huma output for the cash-flow projection.
type ProjectionOutput struct {
	Body ProjectionResponseBody
}

// cashFlowProjector is the interface for running projections.
type cashFlowProjector interface {
	Project(ctx context.Context, asOf time.Time, horizonDays int) ([]engine.DailyCashFlowProjection, error)
}

// ProjectionHandler handles GET /v1/cashflow/projection.
type ProjectionHandler struct {
	ForecastService cashFlowProjector
	MaxHorizonDays  int
}

// NewProjectionHandler creates a new ProjectionHandler. Requests asking for
// more than maxHorizonDays are clamped, not rejected.
func NewProjectionHandler(svc cashFlowProjector, maxHorizonDays int) *ProjectionHandler {
	return &ProjectionHandler{ForecastService: svc, MaxHorizonDays: maxHorizonDays}
}

// Register registers the projection endpoint with the Huma API.
func (h *ProjectionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "cashflow-projection",
		Method:      http.MethodGet,
		Path:        "/v1/cashflow/projection",
		Summary:     "Cash-flow projection",
		Description: "Projects the combined cash balance day by day over the requested horizon.",
		Tags:        []string{"Forecast"},
	}, h.handle)
}

func (h *ProjectionHandler) handle(ctx context.Context, input *ProjectionInput) (*ProjectionOutput, error) {
	logData := logging.GetLogData(ctx)

	horizonDays := input.HorizonDays
	if horizonDays <= 0 || horizonDays > h.MaxHorizonDays {
		horizonDays = h.MaxHorizonDays
	}

	asOf := time.Now()
	if input.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, input.AsOf)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid asOf", err)
		}
		asOf = parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("projectionMs")
	}
	days, err := h.ForecastService.Project(ctx, asOf, horizonDays)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to project cash flow", err)
	}

	if logData != nil {
		logData.AddData("projectedDays", len(days))
	}

	resp := ProjectionResponseBody{
		Days: make([]ProjectionDay, len(days)),
	}
	for i, day := range days {
		lowest := true
		for j := 0; j < i; j++ {
			if days[j].EndOfDayBalance.LessThanOrEqual(day.EndOfDayBalance) {
				lowest = false
				break
			}
		}

		var events []ProjectionEvent
		for _, event := range day.Events {
			direction := "inflow"
			if event.Direction == engine.Outflow {
				direction = "outflow"
			}
			events = append(events, ProjectionEvent{
				Name:      event.Description,
				Amount:    event.Amount.String(),
				Direction: direction,
			})
		}

		resp.Days[i] = ProjectionDay{
			Date:        day.Date.Format(time.RFC3339),
			Events:      events,
			NetChange:   day.EndOfDayBalance.Sub(day.StartOfDayBalance).String(),
			EndOfDay:    day.EndOfDayBalance.String(),
			BelowZero:   day.EndOfDayBalance.IsNegative(),
			LowestSoFar: lowest,
		}
	}

	return &ProjectionOutput{Body: resp}, nil
}

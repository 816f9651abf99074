package recurring

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// SweepInput is the Huma input for triggering a recurring rule sweep.
type SweepInput struct {
	AsOf string `query:"asOf" format:"date-time" doc:"Sweep cutoff day, defaults to now"`
}

// SweepResponseBody is the response body for a recurring rule sweep.
type SweepResponseBody struct {
	RulesSwept          int `json:"rulesSwept" doc:"Rules that produced at least one transaction"`
	TransactionsCreated int `json:"transactionsCreated" doc:"Transactions materialized by this sweep"`
	RulesSkipped        int `json:"rulesSkipped" doc:"Rules skipped because their schedule could not produce a date"`
}

// SweepOutput is the Huma output for a recurring rule sweep.
type SweepOutput struct {
	Body SweepResponseBody
}

// ruleSweeper is the interface for running the recurring rule sweep.
type ruleSweeper interface {
	Sweep(ctx context.Context, asOf time.Time) (*service.SweepResult, error)
}

// SweepHandler handles POST /v1/recurring/sweep.
type SweepHandler struct {
	RecurringService ruleSweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(svc ruleSweeper) *SweepHandler {
	return &SweepHandler{RecurringService: svc}
}

// Register registers the sweep endpoint with the Huma API.
func (h *SweepHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sweep-recurring-rules",
		Method:      http.MethodPost,
		Path:        "/v1/recurring/sweep",
		Summary:     "Sweep recurring rules",
		Description: "Materializes transactions for every due occurrence of active recurring rules. Safe to run repeatedly.",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *SweepHandler) handle(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	logData := logging.GetLogData(ctx)

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
		stopTimer = logData.AddTiming("sweepMs")
	}
	result, err := h.RecurringService.Sweep(ctx, asOf)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sweep recurring rules", err)
	}

	if logData != nil {
		logData.AddData("transactionsCreated", result.TransactionsCreated)
	}

	return &SweepOutput{
		Body: SweepResponseBody{
			RulesSwept:          result.RulesSwept,
			TransactionsCreated: result.TransactionsCreated,
			RulesSkipped:        result.RulesSkipped,
		},
	}, nil
}

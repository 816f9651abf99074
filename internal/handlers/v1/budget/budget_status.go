package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// BudgetStatus is the API response model for one budget month's consumption.
type BudgetStatus struct {
	BudgetID          string `json:"budgetID" doc:"Budget UUID"`
	CategoryID        string `json:"categoryID" doc:"Category UUID"`
	Month             string `json:"month" doc:"RFC3339 first-of-month instant"`
	LimitAmount       string `json:"limitAmount" doc:"Configured monthly limit"`
	Spent             string `json:"spent" doc:"Expenses attributed to this budget month"`
	RolloverApplied   string `json:"rolloverApplied" doc:"Unused budget carried in from the previous month"`
	EffectiveLimit    string `json:"effectiveLimit" doc:"Limit plus rollover"`
	Progress          string `json:"progress" doc:"Spent as a percentage of the effective limit"`
	State             string `json:"state" doc:"Not Started, On Track, Nearing Limit, or Overspent"`
	RolloverAmbiguous bool   `json:"rolloverAmbiguous,omitempty" doc:"Set when multiple prior budgets qualified as rollover source"`
}

// BudgetStatusesInput is the Huma input for the budget status listing.
type BudgetStatusesInput struct{}

// BudgetStatusesResponseBody is the response body for the budget status listing.
type BudgetStatusesResponseBody struct {
	Budgets []BudgetStatus `json:"budgets" doc:"Derived status for every budget month"`
}

// BudgetStatusesOutput is the Huma output for the budget status listing.
type BudgetStatusesOutput struct {
	Body BudgetStatusesResponseBody
}

// budgetStatusLister is the interface for deriving budget statuses.
type budgetStatusLister interface {
	BudgetStatuses(ctx context.Context) ([]service.BudgetStatus, error)
}

// BudgetStatusesHandler handles GET /v1/budgets/status.
type BudgetStatusesHandler struct {
	BudgetService budgetStatusLister
}

// NewBudgetStatusesHandler creates a new BudgetStatusesHandler.
func NewBudgetStatusesHandler(svc budgetStatusLister) *BudgetStatusesHandler {
	return &BudgetStatusesHandler{BudgetService: svc}
}

// Register registers the budget status endpoint with the Huma API.
func (h *BudgetStatusesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-statuses",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/status",
		Summary:     "Budget statuses",
		Description: "Returns derived consumption state for every budget month, including rollover.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetStatusesHandler) handle(ctx context.Context, _ *BudgetStatusesInput) (*BudgetStatusesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetStatusesMs")
	}
	statuses, err := h.BudgetService.BudgetStatuses(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to derive budget statuses", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(statuses))
	}

	resp := BudgetStatusesResponseBody{
		Budgets: make([]BudgetStatus, len(statuses)),
	}
	for i, s := range statuses {
		resp.Budgets[i] = BudgetStatus{
			BudgetID:          s.BudgetID.String(),
			CategoryID:        s.CategoryID.String(),
			Month:             s.Month.Format(time.RFC3339),
			LimitAmount:       s.LimitAmount.String(),
			Spent:             s.Spent.String(),
			RolloverApplied:   s.RolloverApplied.String(),
			EffectiveLimit:    s.EffectiveLimit.String(),
			Progress:          s.Progress.String(),
			State:             s.State,
			RolloverAmbiguous: s.RolloverAmbiguous,
		}
	}

	return &BudgetStatusesOutput{Body: resp}, nil
}

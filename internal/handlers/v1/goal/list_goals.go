package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	AsOf string `query:"asOf" format:"date-time" doc:"Reference day for progress math, defaults to now"`
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"All goals with derived progress"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals with progress.
type goalLister interface {
	ListGoals(ctx context.Context, asOf time.Time) ([]service.GoalProgress, error)
}

// ListGoalsHandler handles GET /v1/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List goals",
		Description: "Returns every savings goal with its derived progress.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	logData := logging.GetLogData(ctx)

	asOf := time.Now()
	if input.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, input.AsOf)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid asOf", err)
		}
		asOf = parsed
	}

	goals, err := h.GoalService.ListGoals(ctx, asOf)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	if logData != nil {
		logData.AddData("goalCount", len(goals))
	}

	resp := ListGoalsResponseBody{
		Goals: make([]Goal, len(goals)),
	}
	for i, g := range goals {
		resp.Goals[i] = Goal{
			ID:              g.ID.String(),
			Name:            g.Name,
			TargetAmount:    g.TargetAmount.String(),
			SavedAmount:     g.SavedAmount.String(),
			TargetDate:      g.TargetDate.Format(time.RFC3339),
			Remaining:       g.Remaining.String(),
			PercentComplete: g.PercentComplete.String(),
			MonthlyNeeded:   g.MonthlyNeeded.String(),
			Achieved:        g.Achieved,
		}
	}

	return &ListGoalsOutput{Body: resp}, nil
}

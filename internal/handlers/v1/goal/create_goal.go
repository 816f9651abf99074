package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// CreateGoalBody is the request body for creating a savings goal.
type CreateGoalBody struct {
	Name         string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Decimal target amount"`
	SavedAmount  string `json:"savedAmount,omitempty" doc:"Decimal amount already saved, defaults to 0"`
	TargetDate   string `json:"targetDate" required:"true" format:"date-time" doc:"RFC3339 target date"`
}

// CreateGoalInput is the Huma input for creating a savings goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalResponse is the response body for creating a savings goal.
type CreateGoalResponse struct {
	ID string `json:"id" doc:"Created goal UUID"`
}

// CreateGoalOutput is the Huma output for creating a savings goal.
type CreateGoalOutput struct {
	Status int
	Body   CreateGoalResponse
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	CreateGoal(ctx context.Context, create service.GoalCreate) (uuid.UUID, error)
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	GoalService goalCreator
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal",
		Summary:     "Create goal",
		Description: "Creates a savings goal with a target amount and date.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func parseCreateGoalInput(input *CreateGoalInput) (service.GoalCreate, error) {
	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return service.GoalCreate{}, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	savedAmount := decimal.Zero
	if input.Body.SavedAmount != "" {
		savedAmount, err = decimal.NewFromString(input.Body.SavedAmount)
		if err != nil {
			return service.GoalCreate{}, huma.NewError(http.StatusBadRequest, "invalid savedAmount", err)
		}
	}

	targetDate, err := time.Parse(time.RFC3339, input.Body.TargetDate)
	if err != nil {
		return service.GoalCreate{}, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
	}

	return service.GoalCreate{
		Name:         input.Body.Name,
		TargetAmount: targetAmount,
		SavedAmount:  savedAmount,
		TargetDate:   targetDate,
	}, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateGoalInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.GoalService.CreateGoal(ctx, create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create goal", err)
	}

	if logData != nil {
		logData.AddData("goalID", id.String())
	}

	return &CreateGoalOutput{
		Status: http.StatusCreated,
		Body:   CreateGoalResponse{ID: id.String()},
	}, nil
}

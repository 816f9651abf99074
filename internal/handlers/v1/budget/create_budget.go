package budget

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

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID      string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	LimitAmount     string `json:"limitAmount" required:"true" doc:"Decimal monthly limit"`
	StartDate       string `json:"startDate" required:"true" format:"date-time" doc:"Budget month, normalized to the first of the month"`
	RolloverEnabled bool   `json:"rolloverEnabled,omitempty" doc:"Whether unused budget rolls into the next month"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, budget service.Budget) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create budget",
		Description: "Creates a monthly category budget.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.Budget, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	limitAmount, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}
	startDate, err := time.Parse(time.RFC3339, input.Body.StartDate)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}

	return service.Budget{
		CategoryID:      categoryID,
		LimitAmount:     limitAmount,
		StartDate:       startDate,
		RolloverEnabled: input.Body.RolloverEnabled,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	budget, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.BudgetService.CreateBudget(ctx, budget)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: id.String()},
	}, nil
}

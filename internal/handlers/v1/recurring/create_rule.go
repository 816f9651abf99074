package recurring

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

// CreateRuleBody is the request body for creating a recurring rule.
type CreateRuleBody struct {
	Name       string `json:"name" required:"true" minLength:"1" doc:"Rule name, also used for materialized transactions"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount per occurrence"`
	Type       string `json:"type,omitempty" enum:"income,expense" doc:"Transaction type, defaults to expense"`
	AccountID  string `json:"accountID" required:"true" format:"uuid" doc:"Account materialized transactions post to"`
	CategoryID string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Frequency  string `json:"frequency" required:"true" enum:"daily,weekly,monthly,yearly" doc:"How often the rule fires"`
	DayOfWeek  *int16 `json:"dayOfWeek,omitempty" minimum:"0" maximum:"6" doc:"Weekday for weekly rules, 0=Sunday"`
	DayOfMonth *int16 `json:"dayOfMonth,omitempty" minimum:"1" maximum:"31" doc:"Day for monthly and yearly rules, clamped to month length"`
	StartDate  string `json:"startDate" required:"true" format:"date-time" doc:"RFC3339 first eligible day"`
	EndDate    string `json:"endDate,omitempty" format:"date-time" doc:"RFC3339 last eligible day, open-ended when omitted"`
}

// CreateRuleInput is the Huma input for creating a recurring rule.
type CreateRuleInput struct {
	Body CreateRuleBody
}

// CreateRuleResponse is the response body for creating a recurring rule.
type CreateRuleResponse struct {
	ID string `json:"id" doc:"Created rule UUID"`
}

// CreateRuleOutput is the Huma output for creating a recurring rule.
type CreateRuleOutput struct {
	Status int
	Body   CreateRuleResponse
}

// ruleCreator is the interface for creating recurring rules.
type ruleCreator interface {
	CreateRule(ctx context.Context, create service.RuleCreate) (uuid.UUID, error)
}

// CreateRuleHandler handles POST /v1/recurring/rule.
type CreateRuleHandler struct {
	RecurringService ruleCreator
}

// NewCreateRuleHandler creates a new CreateRuleHandler.
func NewCreateRuleHandler(svc ruleCreator) *CreateRuleHandler {
	return &CreateRuleHandler{RecurringService: svc}
}

// Register registers the create rule endpoint with the Huma API.
func (h *CreateRuleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-recurring-rule",
		Method:      http.MethodPost,
		Path:        "/v1/recurring/rule",
		Summary:     "Create recurring rule",
		Description: "Creates a recurring transaction rule swept into real transactions on demand.",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func parseCreateRuleInput(input *CreateRuleInput) (service.RuleCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.RuleCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.RuleCreate{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.RuleCreate{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	startDate, err := time.Parse(time.RFC3339, input.Body.StartDate)
	if err != nil {
		return service.RuleCreate{}, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}

	var endDate time.Time
	if input.Body.EndDate != "" {
		endDate, err = time.Parse(time.RFC3339, input.Body.EndDate)
		if err != nil {
			return service.RuleCreate{}, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
	}

	transactionType := service.TransactionType(input.Body.Type)
	if transactionType == "" {
		transactionType = service.TransactionTypeExpense
	}

	return service.RuleCreate{
		Name:       input.Body.Name,
		Amount:     amount,
		Type:       transactionType,
		AccountID:  accountID,
		CategoryID: categoryID,
		Frequency:  service.RuleFrequency(input.Body.Frequency),
		DayOfWeek:  input.Body.DayOfWeek,
		DayOfMonth: input.Body.DayOfMonth,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

func (h *CreateRuleHandler) handle(ctx context.Context, input *CreateRuleInput) (*CreateRuleOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateRuleInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.RecurringService.CreateRule(ctx, create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create recurring rule", err)
	}

	if logData != nil {
		logData.AddData("ruleID", id.String())
	}

	return &CreateRuleOutput{
		Status: http.StatusCreated,
		Body:   CreateRuleResponse{ID: id.String()},
	}, nil
}

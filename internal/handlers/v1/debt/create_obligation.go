package debt

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

// CreateObligationBody is the request body for creating an obligation.
type CreateObligationBody struct {
	Kind        string `json:"kind" required:"true" enum:"receivable,payable" doc:"Whether money is owed to you or by you"`
	Name        string `json:"name" required:"true" minLength:"1" doc:"Obligation name"`
	TotalAmount string `json:"totalAmount" required:"true" doc:"Decimal total owed"`
	DueDate     string `json:"dueDate" required:"true" format:"date-time" doc:"RFC3339 due date"`
}

// CreateObligationInput is the Huma input for creating an obligation.
type CreateObligationInput struct {
	Body CreateObligationBody
}

// CreateObligationResponse is the response body for creating an obligation.
type CreateObligationResponse struct {
	ID string `json:"id" doc:"Created obligation UUID"`
}

// CreateObligationOutput is the Huma output for creating an obligation.
type CreateObligationOutput struct {
	Status int
	Body   CreateObligationResponse
}

// obligationCreator is the interface for creating obligations.
type obligationCreator interface {
	CreateObligation(ctx context.Context, create service.ObligationCreate) (uuid.UUID, error)
}

// CreateObligationHandler handles POST /v1/obligation.
type CreateObligationHandler struct {
	DebtService obligationCreator
}

// NewCreateObligationHandler creates a new CreateObligationHandler.
func NewCreateObligationHandler(svc obligationCreator) *CreateObligationHandler {
	return &CreateObligationHandler{DebtService: svc}
}

// Register registers the create obligation endpoint with the Huma API.
func (h *CreateObligationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-obligation",
		Method:      http.MethodPost,
		Path:        "/v1/obligation",
		Summary:     "Create obligation",
		Description: "Creates a receivable or payable with a total amount and due date.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func parseCreateObligationInput(input *CreateObligationInput) (service.ObligationCreate, error) {
	totalAmount, err := decimal.NewFromString(input.Body.TotalAmount)
	if err != nil {
		return service.ObligationCreate{}, huma.NewError(http.StatusBadRequest, "invalid totalAmount", err)
	}
	dueDate, err := time.Parse(time.RFC3339, input.Body.DueDate)
	if err != nil {
		return service.ObligationCreate{}, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
	}

	return service.ObligationCreate{
		Kind:        service.ObligationKind(input.Body.Kind),
		Name:        input.Body.Name,
		TotalAmount: totalAmount,
		DueDate:     dueDate,
	}, nil
}

func (h *CreateObligationHandler) handle(ctx context.Context, input *CreateObligationInput) (*CreateObligationOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateObligationInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.DebtService.CreateObligation(ctx, create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create obligation", err)
	}

	if logData != nil {
		logData.AddData("obligationID", id.String())
	}

	return &CreateObligationOutput{
		Status: http.StatusCreated,
		Body:   CreateObligationResponse{ID: id.String()},
	}, nil
}

package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/logging"
)

// UpdateSavedBody is the request body for updating a goal's saved amount.
type UpdateSavedBody struct {
	SavedAmount string `json:"savedAmount" required:"true" doc:"Decimal amount saved so far"`
}

// UpdateSavedInput is the Huma input for updating a goal's saved amount.
type UpdateSavedInput struct {
	ID   string `path:"id" format:"uuid" doc:"Goal UUID"`
	Body UpdateSavedBody
}

// UpdateSavedOutput is the Huma output for updating a goal's saved amount.
type UpdateSavedOutput struct {
	Status int
}

// savedAmountUpdater is the interface for updating goal saved amounts.
type savedAmountUpdater interface {
	UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error
}

// UpdateSavedHandler handles PUT /v1/goal/{id}/saved.
type UpdateSavedHandler struct {
	GoalService savedAmountUpdater
}

// NewUpdateSavedHandler creates a new UpdateSavedHandler.
func NewUpdateSavedHandler(svc savedAmountUpdater) *UpdateSavedHandler {
	return &UpdateSavedHandler{GoalService: svc}
}

// Register registers the update saved amount endpoint with the Huma API.
func (h *UpdateSavedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal-saved",
		Method:      http.MethodPut,
		Path:        "/v1/goal/{id}/saved",
		Summary:     "Update goal saved amount",
		Description: "Replaces the saved-so-far amount of a goal.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *UpdateSavedHandler) handle(ctx context.Context, input *UpdateSavedInput) (*UpdateSavedOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}
	saved, err := decimal.NewFromString(input.Body.SavedAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid savedAmount", err)
	}

	if err := h.GoalService.UpdateSavedAmount(ctx, id, saved); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update goal", err)
	}

	if logData != nil {
		logData.AddData("goalID", id.String())
	}

	return &UpdateSavedOutput{Status: http.StatusNoContent}, nil
}

package debt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// RecordPaymentBody is the request body for recording a payment.
type RecordPaymentBody struct {
	Target   string `json:"target" required:"true" enum:"obligation,liability" doc:"Which kind of debt the payment applies to"`
	TargetID string `json:"targetID" required:"true" format:"uuid" doc:"Obligation or liability UUID"`
	Amount   string `json:"amount" required:"true" doc:"Decimal payment amount, must be positive"`
	PaidOn   string `json:"paidOn,omitempty" format:"date-time" doc:"RFC3339 payment date, defaults to now"`
}

// RecordPaymentInput is the Huma input for recording a payment.
type RecordPaymentInput struct {
	Body RecordPaymentBody
}

// RecordPaymentOutput is the Huma output for recording a payment.
type RecordPaymentOutput struct {
	Status int
}

// paymentRecorder is the interface for recording payments.
type paymentRecorder interface {
	RecordPayment(ctx context.Context, payment service.Payment) error
}

// RecordPaymentHandler handles POST /v1/payment.
type RecordPaymentHandler struct {
	DebtService paymentRecorder
}

// NewRecordPaymentHandler creates a new RecordPaymentHandler.
func NewRecordPaymentHandler(svc paymentRecorder) *RecordPaymentHandler {
	return &RecordPaymentHandler{DebtService: svc}
}

// Register registers the record payment endpoint with the Huma API.
func (h *RecordPaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "record-payment",
		Method:      http.MethodPost,
		Path:        "/v1/payment",
		Summary:     "Record payment",
		Description: "Records a payment against an obligation or liability.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func parseRecordPaymentInput(input *RecordPaymentInput) (service.Payment, error) {
	targetID, err := uuid.FromString(input.Body.TargetID)
	if err != nil {
		return service.Payment{}, huma.NewError(http.StatusBadRequest, "invalid targetID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Payment{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	paidOn := time.Now()
	if input.Body.PaidOn != "" {
		paidOn, err = time.Parse(time.RFC3339, input.Body.PaidOn)
		if err != nil {
			return service.Payment{}, huma.NewError(http.StatusBadRequest, "invalid paidOn", err)
		}
	}

	return service.Payment{
		Target:   service.PaymentTarget(input.Body.Target),
		TargetID: targetID,
		Amount:   amount,
		PaidOn:   paidOn,
	}, nil
}

func (h *RecordPaymentHandler) handle(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error) {
	logData := logging.GetLogData(ctx)

	payment, err := parseRecordPaymentInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("recordPaymentMs")
	}
	err = h.DebtService.RecordPayment(ctx, payment)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, actions.ErrPaymentTargetNotFound):
			return nil, huma.NewError(http.StatusNotFound, "payment target not found", err)
		case errors.Is(err, actions.ErrNonPositivePayment):
			return nil, huma.NewError(http.StatusBadRequest, "payment amount must be positive", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to record payment", err)
		}
	}

	return &RecordPaymentOutput{Status: http.StatusCreated}, nil
}
